// Package game parses game command flags and runs the roster load pipeline.
package game

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	entrypoint "github.com/okvist/trailbound/internal/platform/cmd"
	"github.com/okvist/trailbound/internal/services/game/app"
	"github.com/okvist/trailbound/internal/services/game/domain/roster"
	"github.com/okvist/trailbound/internal/services/game/source/yamldir"
	"github.com/okvist/trailbound/internal/services/game/storage"
	"github.com/okvist/trailbound/internal/services/game/storage/sqlite"
)

// Config holds game command configuration.
type Config struct {
	CharactersDir string `env:"TRAILBOUND_GAME_CHARACTERS_DIR" envDefault:"data/characters"`
	StatePath     string `env:"TRAILBOUND_GAME_STATE_PATH"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.CharactersDir, "characters", cfg.CharactersDir, "Directory holding character YAML files")
	fs.StringVar(&cfg.StatePath, "state", cfg.StatePath, "SQLite path for the roster snapshot (empty disables persistence)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run loads the character roster, reports issues, and optionally snapshots
// the validated roster to SQLite.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGame, func(ctx context.Context) error {
		session, err := loadSession(ctx, cfg)
		if err != nil {
			return err
		}

		for _, line := range session.LoadLog() {
			log.Printf("%s", line)
		}

		if player, ok := session.PlayerCharacter(); ok {
			log.Printf("player: %s", player.ShortDescription())
			for _, line := range strings.Split(player.FamilyDisplay(), "\n") {
				log.Printf("%s", line)
			}
		}
		log.Printf("loaded %d characters", len(session.AllCharacters()))

		if cfg.StatePath != "" {
			if err := snapshotRoster(ctx, cfg.StatePath, session); err != nil {
				return err
			}
			log.Printf("roster snapshot saved to %s", cfg.StatePath)
		}

		// The loader never hard-fails on per-record issues; the command is
		// where accumulated issues become an exit decision.
		if session.HasLoadIssues() {
			for _, issue := range session.LoadIssues() {
				log.Printf("issue [%s]: %s", issue.Code, issue.Message)
			}
			return fmt.Errorf("roster loaded with %d issues", len(session.LoadIssues()))
		}
		return nil
	})
}

func loadSession(ctx context.Context, cfg Config) (*app.Session, error) {
	source := yamldir.New(cfg.CharactersDir)
	records, err := source.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("read character records: %w", err)
	}

	loader := roster.NewLoader()
	result := loader.Load(ctx, records)
	return app.NewSession(result)
}

func snapshotRoster(ctx context.Context, path string, session *app.Session) error {
	store, err := sqlite.Open(ctx, path)
	if err != nil {
		return fmt.Errorf("open roster store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close roster store: %v", err)
		}
	}()

	characters := session.AllCharacters()
	records := make([]storage.CharacterRecord, 0, len(characters))
	for _, ch := range characters {
		records = append(records, storage.FromCharacter(ch))
	}
	if err := store.SaveRoster(ctx, records); err != nil {
		return fmt.Errorf("save roster snapshot: %w", err)
	}
	return nil
}
