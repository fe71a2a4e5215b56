package roster

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"

	apperrors "github.com/okvist/trailbound/internal/platform/errors"
	"github.com/okvist/trailbound/internal/services/game/domain/character"
)

func validRecord(id, name string) character.Record {
	return character.Record{
		Source: id + ".yaml",
		Fields: map[string]any{
			"id":     id,
			"name":   name,
			"age":    30,
			"gender": "F",
			"bio":    "Born on the trail.",
		},
	}
}

func playerRecord(id, name string) character.Record {
	rec := validRecord(id, name)
	rec.Fields["is_player"] = true
	return rec
}

func withSpouse(rec character.Record, spouseID string) character.Record {
	rec.Fields["relationships"] = map[string]any{"spouse_id": spouseID}
	return rec
}

func errorCodes(result Result) []string {
	codes := make([]string, 0, len(result.Errors))
	for _, err := range result.Errors {
		codes = append(codes, string(err.Code))
	}
	return codes
}

func countCode(result Result, code apperrors.Code) int {
	count := 0
	for _, err := range result.Errors {
		if err.Code == code {
			count++
		}
	}
	return count
}

func TestLoadSinglePlayerRecord(t *testing.T) {
	loader := NewLoader()
	result := loader.Load(context.Background(), []character.Record{
		playerRecord("P1", "Jane Harrow"),
	})

	if len(result.Registry) != 1 {
		t.Fatalf("expected 1 registry entry, got %d", len(result.Registry))
	}
	if result.PlayerID != "P1" {
		t.Fatalf("expected player id P1, got %q", result.PlayerID)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", errorCodes(result))
	}
}

func TestLoadEmptyBatch(t *testing.T) {
	loader := NewLoader()
	result := loader.Load(context.Background(), nil)

	if len(result.Registry) != 0 {
		t.Fatalf("expected empty registry, got %d entries", len(result.Registry))
	}
	if result.PlayerID != "" {
		t.Fatalf("expected no player id, got %q", result.PlayerID)
	}
	// An empty registry with no player is not an error.
	if len(result.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", errorCodes(result))
	}
}

func TestLoadIsIdempotentAcrossRuns(t *testing.T) {
	records := []character.Record{
		playerRecord("P1", "Jane Harrow"),
		withSpouse(validRecord("E1", "Eli Harrow"), "P1"),
		validRecord("P1", "Impostor"),
	}

	loader := NewLoader()
	first := loader.Load(context.Background(), records)
	second := loader.Load(context.Background(), records)

	firstKeys := make([]string, 0, len(first.Registry))
	for key := range first.Registry {
		firstKeys = append(firstKeys, key)
	}
	secondKeys := make([]string, 0, len(second.Registry))
	for key := range second.Registry {
		secondKeys = append(secondKeys, key)
	}
	sort.Strings(firstKeys)
	sort.Strings(secondKeys)

	if strings.Join(firstKeys, ",") != strings.Join(secondKeys, ",") {
		t.Fatalf("registry keys differ across runs: %v vs %v", firstKeys, secondKeys)
	}
	if first.PlayerID != second.PlayerID {
		t.Fatalf("player id differs across runs: %q vs %q", first.PlayerID, second.PlayerID)
	}
	firstCodes := errorCodes(first)
	secondCodes := errorCodes(second)
	sort.Strings(firstCodes)
	sort.Strings(secondCodes)
	if strings.Join(firstCodes, ",") != strings.Join(secondCodes, ",") {
		t.Fatalf("error sets differ across runs: %v vs %v", firstCodes, secondCodes)
	}
}

func TestLoadDuplicateIDFirstWins(t *testing.T) {
	first := playerRecord("X", "Original")
	second := validRecord("X", "Impostor")
	second.Source = "impostor.yaml"

	loader := NewLoader()
	result := loader.Load(context.Background(), []character.Record{first, second})

	if result.Registry["X"].Name != "Original" {
		t.Fatalf("expected first record retained, got %q", result.Registry["X"].Name)
	}
	if got := countCode(result, apperrors.CodeRosterDuplicateID); got != 1 {
		t.Fatalf("expected exactly one duplicate-id error, got %d (%v)", got, errorCodes(result))
	}
	for _, err := range result.Errors {
		if err.Code == apperrors.CodeRosterDuplicateID && err.Metadata["id"] != "X" {
			t.Fatalf("expected duplicate error naming id X, got %v", err.Metadata)
		}
	}
}

func TestLoadLastPlayerWins(t *testing.T) {
	records := []character.Record{
		playerRecord("A", "First Player"),
		validRecord("B", "Bystander"),
		playerRecord("C", "Second Player"),
	}

	loader := NewLoader()
	result := loader.Load(context.Background(), records)

	if result.PlayerID != "C" {
		t.Fatalf("expected player id C, got %q", result.PlayerID)
	}
	if got := countCode(result, apperrors.CodeRosterMultiplePlayers); got != 1 {
		t.Fatalf("expected one multiple-players error, got %d", got)
	}
	for _, err := range result.Errors {
		if err.Code != apperrors.CodeRosterMultiplePlayers {
			continue
		}
		if err.Metadata["old"] != "A" || err.Metadata["new"] != "C" {
			t.Fatalf("expected old A and new C, got %v", err.Metadata)
		}
	}
}

func TestLoadDanglingSpouseIsNonFatal(t *testing.T) {
	rec := withSpouse(playerRecord("P1", "Jane Harrow"), "GHOST")

	loader := NewLoader()
	result := loader.Load(context.Background(), []character.Record{rec})

	ch, ok := result.Registry["P1"]
	if !ok {
		t.Fatal("expected registry entry despite dangling spouse id")
	}
	if ch.Spouse != nil {
		t.Fatalf("expected absent spouse link, got %q", ch.Spouse.ID)
	}
	found := false
	for _, line := range result.Log {
		if strings.Contains(line, "GHOST") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected log entry naming GHOST, got:\n%s", strings.Join(result.Log, "\n"))
	}
	// Dangling references are informational, not classified failures.
	if len(result.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", errorCodes(result))
	}
}

func TestLoadNoPlayerDesignated(t *testing.T) {
	records := []character.Record{
		validRecord("A", "Alma"),
		validRecord("B", "Brigham"),
	}

	loader := NewLoader()
	result := loader.Load(context.Background(), records)

	if result.PlayerID != "" {
		t.Fatalf("expected no player id, got %q", result.PlayerID)
	}
	if got := countCode(result, apperrors.CodeRosterNoPlayer); got != 1 {
		t.Fatalf("expected one no-player error, got %d (%v)", got, errorCodes(result))
	}
}

func TestLoadMutualSpouseLinks(t *testing.T) {
	recA := withSpouse(playerRecord("A", "Jane Harrow"), "B")
	recB := withSpouse(validRecord("B", "Eli Harrow"), "A")

	loader := NewLoader()
	result := loader.Load(context.Background(), []character.Record{recA, recB})

	if len(result.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", errorCodes(result))
	}
	a, b := result.Registry["A"], result.Registry["B"]
	if a.Spouse != b {
		t.Fatal("expected A's spouse link to be the registry's B")
	}
	if b.Spouse != a {
		t.Fatal("expected B's spouse link to be the registry's A")
	}
}

func TestLoadSkipsMalformedRecordAndContinues(t *testing.T) {
	broken := validRecord("BAD", "Broken")
	delete(broken.Fields, "name")
	records := []character.Record{
		broken,
		playerRecord("P1", "Jane Harrow"),
	}

	loader := NewLoader()
	result := loader.Load(context.Background(), records)

	if len(result.Registry) != 1 {
		t.Fatalf("expected 1 registry entry, got %d", len(result.Registry))
	}
	if got := countCode(result, apperrors.CodeCharacterMissingField); got != 1 {
		t.Fatalf("expected one missing-field error, got %d (%v)", got, errorCodes(result))
	}
}

func TestLoadReportsUnreadableRecords(t *testing.T) {
	records := []character.Record{
		{Source: "corrupt.yaml", Err: fmt.Errorf("yaml: control characters are not allowed")},
		playerRecord("P1", "Jane Harrow"),
	}

	loader := NewLoader()
	result := loader.Load(context.Background(), records)

	if got := countCode(result, apperrors.CodeRosterRecordUnreadable); got != 1 {
		t.Fatalf("expected one unreadable-record error, got %d", got)
	}
	if len(result.Registry) != 1 {
		t.Fatalf("expected valid record to load, got %d entries", len(result.Registry))
	}
	for _, err := range result.Errors {
		if err.Code == apperrors.CodeRosterRecordUnreadable && err.Metadata["source"] != "corrupt.yaml" {
			t.Fatalf("expected error naming source, got %v", err.Metadata)
		}
	}
}

func TestLoadErrorsMirroredIntoLog(t *testing.T) {
	records := []character.Record{
		validRecord("A", "Alma"),
		validRecord("A", "Duplicate Alma"),
	}

	loader := NewLoader()
	result := loader.Load(context.Background(), records)

	for _, err := range result.Errors {
		mirrored := false
		for _, line := range result.Log {
			if strings.Contains(line, err.Message) {
				mirrored = true
			}
		}
		if !mirrored {
			t.Fatalf("error %q not mirrored into log", err.Message)
		}
	}
}

func TestLoadZeroValueLoaderUsable(t *testing.T) {
	var loader Loader
	result := loader.Load(context.Background(), []character.Record{playerRecord("P1", "Jane Harrow")})
	if len(result.Registry) != 1 {
		t.Fatalf("expected zero-value loader to work, got %d entries", len(result.Registry))
	}
}

func TestLoadErrorClassificationIsDomainError(t *testing.T) {
	broken := validRecord("BAD", "Broken")
	delete(broken.Fields, "age")

	loader := NewLoader()
	result := loader.Load(context.Background(), []character.Record{broken})

	if len(result.Errors) == 0 {
		t.Fatal("expected classified error")
	}
	sentinel := apperrors.New(apperrors.CodeCharacterMissingField, "")
	if !errors.Is(result.Errors[0], sentinel) {
		t.Fatalf("expected missing-field classification, got %q", result.Errors[0].Code)
	}
}
