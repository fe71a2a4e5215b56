// Package storage defines persistence interfaces for game services.
//
// It covers roster snapshots: the validated character registry a load run
// produced, flattened into records a store can persist. Implementations
// (e.g., SQLite) live in subpackages.
package storage

import (
	"context"

	apperrors "github.com/okvist/trailbound/internal/platform/errors"
	"github.com/okvist/trailbound/internal/services/game/domain/character"
)

// ErrNotFound indicates a requested persistence record is missing.
// Callers use this to differentiate between legitimate "no such character"
// states and transport or data corruption failures.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// CharacterRecord captures the flattened character state a roster snapshot
// persists. Relationship links are stored as raw identifiers; they are
// re-resolved against the registry on load, never persisted as object data.
type CharacterRecord struct {
	ID          string
	Name        string
	Age         int
	Gender      string
	Bio         string
	IsPlayer    bool
	Traits      []string
	Skills      []string
	Assets      []string
	SpouseID    string
	ParentIDs   []string
	ChildrenIDs []string
	SiblingIDs  []string
}

// FromCharacter flattens a loaded character into its persistence shape.
func FromCharacter(ch *character.Character) CharacterRecord {
	return CharacterRecord{
		ID:          ch.ID,
		Name:        ch.Name,
		Age:         ch.Age,
		Gender:      ch.Gender,
		Bio:         ch.Bio,
		IsPlayer:    ch.IsPlayer,
		Traits:      ch.Traits,
		Skills:      ch.Skills,
		Assets:      ch.Assets,
		SpouseID:    ch.Relationships.SpouseID,
		ParentIDs:   ch.Relationships.ParentIDs,
		ChildrenIDs: ch.Relationships.ChildrenIDs,
		SiblingIDs:  ch.Relationships.SiblingIDs,
	}
}

// RosterStore persists roster snapshots.
type RosterStore interface {
	// SaveRoster atomically replaces the stored snapshot with the given
	// records.
	SaveRoster(ctx context.Context, records []CharacterRecord) error
	// GetCharacter fetches one stored character by id, returning
	// ErrNotFound when absent.
	GetCharacter(ctx context.Context, id string) (CharacterRecord, error)
	// ListCharacters returns every stored character ordered by id.
	ListCharacters(ctx context.Context) ([]CharacterRecord, error)
	// Close releases the underlying resources.
	Close() error
}
