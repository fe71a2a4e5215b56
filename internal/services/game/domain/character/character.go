// Package character provides the character entity and raw-record decoding.
//
// A Character is built in two phases. FromRecord performs a pure, per-record
// conversion: required fields are validated, optional fields default, and
// relationship identifiers are captured verbatim without any cross-entity
// work. The roster loader later resolves those identifiers into direct links
// once every character in the batch exists.
package character

import (
	"fmt"
	"strings"

	apperrors "github.com/okvist/trailbound/internal/platform/errors"
)

// ErrMissingField indicates a raw record is missing a required field.
var ErrMissingField = apperrors.New(apperrors.CodeCharacterMissingField, "character field is required")

// ErrEmptyID indicates a raw record carries a blank identifier.
var ErrEmptyID = apperrors.New(apperrors.CodeCharacterEmptyID, "character id must not be empty")

// RelationshipIDs holds the raw relationship identifiers read from a record.
// They are captured at construction and never mutated afterward; resolution
// against the loaded registry happens in a separate phase.
type RelationshipIDs struct {
	SpouseID    string
	ParentIDs   []string
	ChildrenIDs []string
	SiblingIDs  []string
}

// Character represents one character in the roster.
//
// The base attributes are fixed at construction. The link slots (Spouse,
// Parents, Children, Siblings) are populated only by the roster linker and
// point at registry-owned characters; they are lookups, never copies.
type Character struct {
	ID       string
	Name     string
	Age      int
	Gender   string
	Bio      string
	IsPlayer bool
	Traits   []string
	Skills   []string
	Assets   []string

	Relationships RelationshipIDs

	Spouse   *Character
	Parents  []*Character
	Children []*Character
	Siblings []*Character
}

// requiredFields lists required record keys in validation order. The first
// missing one is named in the returned error.
var requiredFields = []string{fieldID, fieldName, fieldAge, fieldGender, fieldBio}

// FromRecord converts a raw record into a Character.
//
// Required fields are id, name, age, gender, and bio; a record missing any
// of them (or carrying a wrong-typed value) fails with a validation error
// naming the first offending field. All other fields are optional: is_player
// defaults to false, the trait/skill/asset lists default to empty, and the
// relationships mapping defaults to empty identifier slots.
func FromRecord(rec Record) (*Character, error) {
	for _, field := range requiredFields {
		if _, present := rec.Fields[field]; !present {
			return nil, missingField(rec, field)
		}
	}

	id, ok := rec.stringField(fieldID)
	if !ok {
		return nil, missingField(rec, fieldID)
	}
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.WithMetadata(apperrors.CodeCharacterEmptyID,
			fmt.Sprintf("character id must not be empty in %s", rec.describe()),
			map[string]string{"source": rec.Source})
	}
	name, ok := rec.stringField(fieldName)
	if !ok {
		return nil, missingField(rec, fieldName)
	}
	age, ok := rec.intField(fieldAge)
	if !ok {
		return nil, missingField(rec, fieldAge)
	}
	gender, ok := rec.stringField(fieldGender)
	if !ok {
		return nil, missingField(rec, fieldGender)
	}
	bio, ok := rec.stringField(fieldBio)
	if !ok {
		return nil, missingField(rec, fieldBio)
	}

	return &Character{
		ID:            id,
		Name:          name,
		Age:           age,
		Gender:        gender,
		Bio:           bio,
		IsPlayer:      rec.boolField(fieldIsPlayer),
		Traits:        rec.stringListField(fieldTraits),
		Skills:        rec.stringListField(fieldSkills),
		Assets:        rec.stringListField(fieldAssets),
		Relationships: rec.relationshipIDs(),
	}, nil
}

func missingField(rec Record, field string) *apperrors.Error {
	return apperrors.WithMetadata(apperrors.CodeCharacterMissingField,
		fmt.Sprintf("missing required field %q in %s", field, rec.describe()),
		map[string]string{"field": field, "source": rec.Source})
}

func (r Record) describe() string {
	if r.Source == "" {
		return "character record"
	}
	return fmt.Sprintf("character record %q", r.Source)
}

// SpouseID returns the raw spouse identifier, empty when absent.
func (c *Character) SpouseID() string {
	return c.Relationships.SpouseID
}

// ParentIDs returns the raw parent identifiers in source order.
func (c *Character) ParentIDs() []string {
	return c.Relationships.ParentIDs
}

// ChildrenIDs returns the raw child identifiers in source order.
func (c *Character) ChildrenIDs() []string {
	return c.Relationships.ChildrenIDs
}

// SiblingIDs returns the raw sibling identifiers in source order.
func (c *Character) SiblingIDs() []string {
	return c.Relationships.SiblingIDs
}

// ShortDescription returns a one-line summary like "Jane Harrow (30F)".
func (c *Character) ShortDescription() string {
	return fmt.Sprintf("%s (%d%s)", c.Name, c.Age, c.Gender)
}

// BioDisplay returns a multi-line block with the character's full details.
func (c *Character) BioDisplay() string {
	bio := "N/A"
	if c.Bio != "" {
		bio = "  " + strings.ReplaceAll(c.Bio, "\n", "\n  ")
	}
	lines := []string{
		fmt.Sprintf("Name: %s", c.Name),
		fmt.Sprintf("ID: %s", c.ID),
		fmt.Sprintf("Age: %d", c.Age),
		fmt.Sprintf("Gender: %s", c.Gender),
		"Bio:",
		bio,
	}
	if len(c.Traits) > 0 {
		lines = append(lines, fmt.Sprintf("Traits: %s", strings.Join(c.Traits, ", ")))
	}
	if len(c.Skills) > 0 {
		lines = append(lines, fmt.Sprintf("Notable Skills: %s", strings.Join(c.Skills, ", ")))
	}
	if len(c.Assets) > 0 {
		lines = append(lines, fmt.Sprintf("Assets: %s", strings.Join(c.Assets, ", ")))
	}
	return strings.Join(lines, "\n")
}

// FamilyDisplay returns a multi-line block describing resolved family links.
func (c *Character) FamilyDisplay() string {
	lines := []string{"Family Information:"}
	if c.Spouse != nil {
		lines = append(lines, fmt.Sprintf("  Spouse: %s (ID: %s)", c.Spouse.Name, c.Spouse.ID))
	} else {
		lines = append(lines, "  Spouse: None")
	}
	if len(c.Parents) > 0 {
		lines = append(lines, fmt.Sprintf("  Parents: %s", joinNames(c.Parents)))
	} else {
		lines = append(lines, "  Parents: Unknown")
	}
	if len(c.Children) > 0 {
		lines = append(lines, fmt.Sprintf("  Children: %s", joinNames(c.Children)))
	} else {
		lines = append(lines, "  Children: None")
	}
	if len(c.Siblings) > 0 {
		lines = append(lines, fmt.Sprintf("  Siblings: %s", joinNames(c.Siblings)))
	}
	return strings.Join(lines, "\n")
}

func joinNames(characters []*Character) string {
	names := make([]string, 0, len(characters))
	for _, ch := range characters {
		names = append(names, ch.Name)
	}
	return strings.Join(names, ", ")
}
