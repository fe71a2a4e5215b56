package roster

import (
	"context"
	"strings"
	"testing"

	"github.com/okvist/trailbound/internal/services/game/domain/character"
)

func withFamily(rec character.Record, parents, children, siblings []string) character.Record {
	rels := map[string]any{}
	if existing, ok := rec.Fields["relationships"].(map[string]any); ok {
		rels = existing
	}
	toAny := func(ids []string) []any {
		out := make([]any, len(ids))
		for i, id := range ids {
			out[i] = id
		}
		return out
	}
	if parents != nil {
		rels["parent_ids"] = toAny(parents)
	}
	if children != nil {
		rels["children_ids"] = toAny(children)
	}
	if siblings != nil {
		rels["sibling_ids"] = toAny(siblings)
	}
	rec.Fields["relationships"] = rels
	return rec
}

func TestLinkFamilyInSourceOrder(t *testing.T) {
	ma := playerRecord("MA", "Martha Harrow")
	pa := validRecord("PA", "Eli Harrow")
	kid := withFamily(validRecord("KID", "Sarah Harrow"), []string{"MA", "PA"}, nil, []string{"BRO"})
	bro := withFamily(validRecord("BRO", "Samuel Harrow"), []string{"MA", "PA"}, nil, []string{"KID"})
	maLinked := withFamily(ma, nil, []string{"KID", "BRO"}, nil)

	loader := NewLoader()
	result := loader.Load(context.Background(), []character.Record{maLinked, pa, kid, bro})

	sarah := result.Registry["KID"]
	if len(sarah.Parents) != 2 || sarah.Parents[0].ID != "MA" || sarah.Parents[1].ID != "PA" {
		t.Fatalf("expected parents in source order MA,PA, got %+v", sarah.Parents)
	}
	if len(sarah.Siblings) != 1 || sarah.Siblings[0].ID != "BRO" {
		t.Fatalf("expected sibling BRO, got %+v", sarah.Siblings)
	}
	martha := result.Registry["MA"]
	if len(martha.Children) != 2 || martha.Children[0].ID != "KID" || martha.Children[1].ID != "BRO" {
		t.Fatalf("expected children in source order KID,BRO, got %+v", martha.Children)
	}
}

func TestLinkSkipsMissingIDsButKeepsRest(t *testing.T) {
	kid := withFamily(playerRecord("KID", "Sarah Harrow"), []string{"GONE", "MA"}, nil, nil)
	ma := validRecord("MA", "Martha Harrow")

	loader := NewLoader()
	result := loader.Load(context.Background(), []character.Record{kid, ma})

	sarah := result.Registry["KID"]
	if len(sarah.Parents) != 1 || sarah.Parents[0].ID != "MA" {
		t.Fatalf("expected only resolvable parent MA, got %+v", sarah.Parents)
	}
	logged := false
	for _, line := range result.Log {
		if strings.Contains(line, "GONE") {
			logged = true
		}
	}
	if !logged {
		t.Fatalf("expected a log entry naming the missing parent id, got:\n%s", strings.Join(result.Log, "\n"))
	}
	if len(result.Errors) != 0 {
		t.Fatalf("expected dangling parent to stay informational, got %v", errorCodes(result))
	}
}

func TestLinkDoesNotDeduplicateSourceDuplicates(t *testing.T) {
	kid := withFamily(playerRecord("KID", "Sarah Harrow"), []string{"MA", "MA"}, nil, nil)
	ma := validRecord("MA", "Martha Harrow")

	loader := NewLoader()
	result := loader.Load(context.Background(), []character.Record{kid, ma})

	sarah := result.Registry["KID"]
	if len(sarah.Parents) != 2 {
		t.Fatalf("expected duplicate source ids to stay duplicated, got %d entries", len(sarah.Parents))
	}
	if sarah.Parents[0] != sarah.Parents[1] {
		t.Fatal("expected both entries to reference the same registry character")
	}
}

func TestLinkedCharactersAreRegistryOwned(t *testing.T) {
	recA := withSpouse(playerRecord("A", "Jane Harrow"), "B")
	recB := withFamily(validRecord("B", "Eli Harrow"), nil, []string{"KID"}, nil)
	kid := validRecord("KID", "Sarah Harrow")

	loader := NewLoader()
	result := loader.Load(context.Background(), []character.Record{recA, recB, kid})

	if result.Registry["A"].Spouse != result.Registry["B"] {
		t.Fatal("expected spouse link to alias the registry entry, not a copy")
	}
	if result.Registry["B"].Children[0] != result.Registry["KID"] {
		t.Fatal("expected child link to alias the registry entry, not a copy")
	}
}
