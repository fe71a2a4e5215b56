// Package yamldir reads raw character records from YAML files in a directory.
//
// Each file holds exactly one character definition. The source only decodes
// files into raw records; structural validation and linking belong to the
// roster loader. A file that fails to decode still yields a record tagged
// with the decode error so the loader can report it and keep going.
package yamldir

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	apperrors "github.com/okvist/trailbound/internal/platform/errors"
	"github.com/okvist/trailbound/internal/services/game/domain/character"
)

// Source reads character records from a directory of .yaml/.yml files.
type Source struct {
	dir string
}

// New creates a Source for the given directory.
func New(dir string) *Source {
	return &Source{dir: dir}
}

// Records reads every character file in the directory, in lexical file-name
// order. Records are tagged with their base file name for error messages.
//
// A missing or unreadable directory is the only fatal condition; per-file
// decode failures are carried inside the returned records.
func (s *Source) Records(ctx context.Context) ([]character.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(s.dir)
	if err != nil || !info.IsDir() {
		return nil, apperrors.WrapWithMetadata(apperrors.CodeRosterSourceMissing,
			fmt.Sprintf("characters directory not found: %s", s.dir),
			map[string]string{"dir": s.dir}, err)
	}

	paths, err := s.characterFiles()
	if err != nil {
		return nil, err
	}

	records := make([]character.Record, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		records = append(records, readRecord(path))
	}
	return records, nil
}

func (s *Source) characterFiles() ([]string, error) {
	var paths []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(s.dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("glob character files: %w", err)
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)
	return paths, nil
}

func readRecord(path string) character.Record {
	source := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return character.Record{Source: source, Err: fmt.Errorf("read character file: %w", err)}
	}

	var fields map[string]any
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return character.Record{Source: source, Err: fmt.Errorf("decode character file: %w", err)}
	}
	if fields == nil {
		return character.Record{Source: source, Err: fmt.Errorf("character file does not contain a mapping")}
	}
	return character.Record{Source: source, Fields: fields}
}
