package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/okvist/trailbound/internal/services/game/storage"
)

// SaveRoster atomically replaces the stored snapshot with the given records.
func (s *Store) SaveRoster(ctx context.Context, records []storage.CharacterRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin roster transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM characters"); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear roster snapshot: %w", err)
	}

	savedAt := time.Now().UTC().UnixMilli()
	for _, rec := range records {
		if strings.TrimSpace(rec.ID) == "" {
			_ = tx.Rollback()
			return fmt.Errorf("character id is required")
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO characters (
    id, name, age, gender, bio, is_player,
    traits, skills, assets,
    spouse_id, parent_ids, children_ids, sibling_ids,
    saved_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.ID, rec.Name, rec.Age, rec.Gender, rec.Bio, boolToInt(rec.IsPlayer),
			listToJSON(rec.Traits), listToJSON(rec.Skills), listToJSON(rec.Assets),
			rec.SpouseID, listToJSON(rec.ParentIDs), listToJSON(rec.ChildrenIDs), listToJSON(rec.SiblingIDs),
			savedAt,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert character %q: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit roster snapshot: %w", err)
	}
	return nil
}

// GetCharacter fetches one stored character by id.
func (s *Store) GetCharacter(ctx context.Context, id string) (storage.CharacterRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.CharacterRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.CharacterRecord{}, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(id) == "" {
		return storage.CharacterRecord{}, fmt.Errorf("character id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, name, age, gender, bio, is_player,
       traits, skills, assets,
       spouse_id, parent_ids, children_ids, sibling_ids
FROM characters WHERE id = ?`, id)

	rec, err := scanCharacter(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.CharacterRecord{}, storage.ErrNotFound
		}
		return storage.CharacterRecord{}, fmt.Errorf("get character: %w", err)
	}
	return rec, nil
}

// ListCharacters returns every stored character ordered by id.
func (s *Store) ListCharacters(ctx context.Context) ([]storage.CharacterRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, name, age, gender, bio, is_player,
       traits, skills, assets,
       spouse_id, parent_ids, children_ids, sibling_ids
FROM characters ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	defer rows.Close()

	var records []storage.CharacterRecord
	for rows.Next() {
		rec, err := scanCharacter(rows)
		if err != nil {
			return nil, fmt.Errorf("scan character: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate characters: %w", err)
	}
	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCharacter(row rowScanner) (storage.CharacterRecord, error) {
	var rec storage.CharacterRecord
	var isPlayer int
	var traits, skills, assets, parentIDs, childrenIDs, siblingIDs string

	if err := row.Scan(
		&rec.ID, &rec.Name, &rec.Age, &rec.Gender, &rec.Bio, &isPlayer,
		&traits, &skills, &assets,
		&rec.SpouseID, &parentIDs, &childrenIDs, &siblingIDs,
	); err != nil {
		return storage.CharacterRecord{}, err
	}

	rec.IsPlayer = isPlayer != 0
	var err error
	if rec.Traits, err = listFromJSON(traits); err != nil {
		return storage.CharacterRecord{}, err
	}
	if rec.Skills, err = listFromJSON(skills); err != nil {
		return storage.CharacterRecord{}, err
	}
	if rec.Assets, err = listFromJSON(assets); err != nil {
		return storage.CharacterRecord{}, err
	}
	if rec.ParentIDs, err = listFromJSON(parentIDs); err != nil {
		return storage.CharacterRecord{}, err
	}
	if rec.ChildrenIDs, err = listFromJSON(childrenIDs); err != nil {
		return storage.CharacterRecord{}, err
	}
	if rec.SiblingIDs, err = listFromJSON(siblingIDs); err != nil {
		return storage.CharacterRecord{}, err
	}
	return rec, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

// listToJSON serializes a string list column. Nil lists persist as empty
// JSON arrays so round-trips stay stable.
func listToJSON(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func listFromJSON(data string) ([]string, error) {
	if data == "" || data == "[]" {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(data), &values); err != nil {
		return nil, fmt.Errorf("decode list column: %w", err)
	}
	return values, nil
}
