// Package worldbuilder provides frontier-themed name and content generation
// for seeding character files with varied, period-appropriate data.
package worldbuilder

import (
	"fmt"
	"math/rand"
)

// WorldBuilder generates frontier-themed names and content.
type WorldBuilder struct {
	rng *rand.Rand
}

// New creates a WorldBuilder with the given random source.
func New(rng *rand.Rand) *WorldBuilder {
	return &WorldBuilder{rng: rng}
}

// FamilyName generates a family surname like "Harrow".
func (w *WorldBuilder) FamilyName() string {
	return surnames[w.rng.Intn(len(surnames))]
}

// GivenName generates a given name for the requested gender ("M" or "F").
func (w *WorldBuilder) GivenName(gender string) string {
	if gender == "M" {
		return maleNames[w.rng.Intn(len(maleNames))]
	}
	return femaleNames[w.rng.Intn(len(femaleNames))]
}

// FullName combines a given name with the family surname.
func (w *WorldBuilder) FullName(gender, family string) string {
	return fmt.Sprintf("%s %s", w.GivenName(gender), family)
}

// Bio generates a short character biography.
func (w *WorldBuilder) Bio() string {
	return bioTemplates[w.rng.Intn(len(bioTemplates))]
}

// Trait generates a personality trait.
func (w *WorldBuilder) Trait() string {
	return traits[w.rng.Intn(len(traits))]
}

// Skill generates a practical frontier skill.
func (w *WorldBuilder) Skill() string {
	return skills[w.rng.Intn(len(skills))]
}

// Asset generates a trail asset or possession.
func (w *WorldBuilder) Asset() string {
	return assets[w.rng.Intn(len(assets))]
}

// Age generates an adult age within the given bounds.
func (w *WorldBuilder) Age(min, max int) int {
	if max <= min {
		return min
	}
	return min + w.rng.Intn(max-min)
}
