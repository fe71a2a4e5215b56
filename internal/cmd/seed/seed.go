// Package seed generates sample character files for local development.
package seed

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	entrypoint "github.com/okvist/trailbound/internal/platform/cmd"
	"github.com/okvist/trailbound/internal/seed/worldbuilder"
)

// Config holds seed command configuration.
type Config struct {
	Dir      string `env:"TRAILBOUND_SEED_DIR" envDefault:"data/characters"`
	Families int    `env:"TRAILBOUND_SEED_FAMILIES" envDefault:"3"`
	Seed     int64  `env:"TRAILBOUND_SEED_RANDOM_SEED"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Dir, "dir", cfg.Dir, "Directory to write character YAML files into")
	fs.IntVar(&cfg.Families, "families", cfg.Families, "Number of families to generate")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 uses the current time)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run generates linked family character files.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSeed, func(ctx context.Context) error {
		return generate(ctx, cfg)
	})
}

// characterFile is the on-disk YAML shape of one character definition.
type characterFile struct {
	ID            string             `yaml:"id"`
	Name          string             `yaml:"name"`
	Age           int                `yaml:"age"`
	Gender        string             `yaml:"gender"`
	Bio           string             `yaml:"bio"`
	IsPlayer      bool               `yaml:"is_player,omitempty"`
	Traits        []string           `yaml:"traits,omitempty"`
	Skills        []string           `yaml:"skills,omitempty"`
	Assets        []string           `yaml:"assets,omitempty"`
	Relationships *relationshipsFile `yaml:"relationships,omitempty"`
}

type relationshipsFile struct {
	SpouseID    string   `yaml:"spouse_id,omitempty"`
	ParentIDs   []string `yaml:"parent_ids,omitempty"`
	ChildrenIDs []string `yaml:"children_ids,omitempty"`
	SiblingIDs  []string `yaml:"sibling_ids,omitempty"`
}

func generate(ctx context.Context, cfg Config) error {
	if cfg.Families < 1 {
		return fmt.Errorf("at least one family is required")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return fmt.Errorf("create characters directory: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	wb := worldbuilder.New(rand.New(rand.NewSource(seed)))

	written := 0
	for family := 0; family < cfg.Families; family++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		// The first generated character is the designated player.
		files := buildFamily(wb, family, family == 0)
		for _, file := range files {
			if err := writeCharacterFile(cfg.Dir, file); err != nil {
				return err
			}
			written++
		}
	}

	log.Printf("seed: wrote %d character files to %s", written, cfg.Dir)
	return nil
}

// buildFamily generates a married couple and their children with mutual
// relationship identifiers, so the loader's linking phase has real work.
func buildFamily(wb *worldbuilder.WorldBuilder, index int, includePlayer bool) []characterFile {
	family := wb.FamilyName()
	prefix := fmt.Sprintf("%s%03d", family, index)

	motherID := prefix + "-MA"
	fatherID := prefix + "-PA"

	childCount := 1 + index%3
	childIDs := make([]string, childCount)
	for i := range childIDs {
		childIDs[i] = fmt.Sprintf("%s-C%d", prefix, i+1)
	}

	mother := characterFile{
		ID:       motherID,
		Name:     wb.FullName("F", family),
		Age:      wb.Age(28, 45),
		Gender:   "F",
		Bio:      wb.Bio(),
		IsPlayer: includePlayer,
		Traits:   []string{wb.Trait(), wb.Trait()},
		Skills:   []string{wb.Skill()},
		Assets:   []string{wb.Asset()},
		Relationships: &relationshipsFile{
			SpouseID:    fatherID,
			ChildrenIDs: childIDs,
		},
	}
	father := characterFile{
		ID:     fatherID,
		Name:   wb.FullName("M", family),
		Age:    wb.Age(30, 50),
		Gender: "M",
		Bio:    wb.Bio(),
		Traits: []string{wb.Trait()},
		Skills: []string{wb.Skill(), wb.Skill()},
		Assets: []string{wb.Asset()},
		Relationships: &relationshipsFile{
			SpouseID:    motherID,
			ChildrenIDs: childIDs,
		},
	}

	files := []characterFile{mother, father}
	for i, childID := range childIDs {
		gender := "M"
		if i%2 == 1 {
			gender = "F"
		}
		siblings := make([]string, 0, len(childIDs)-1)
		for _, other := range childIDs {
			if other != childID {
				siblings = append(siblings, other)
			}
		}
		files = append(files, characterFile{
			ID:     childID,
			Name:   wb.FullName(gender, family),
			Age:    wb.Age(4, 16),
			Gender: gender,
			Bio:    wb.Bio(),
			Relationships: &relationshipsFile{
				ParentIDs:  []string{motherID, fatherID},
				SiblingIDs: siblings,
			},
		})
	}
	return files
}

func writeCharacterFile(dir string, file characterFile) error {
	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("marshal character %q: %w", file.ID, err)
	}
	path := filepath.Join(dir, file.ID+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write character file %q: %w", path, err)
	}
	return nil
}
