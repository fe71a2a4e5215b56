// Package app aggregates loaded game state for presentation layers.
package app

import (
	"fmt"

	apperrors "github.com/okvist/trailbound/internal/platform/errors"
	"github.com/okvist/trailbound/internal/platform/id"
	"github.com/okvist/trailbound/internal/services/game/domain/character"
	"github.com/okvist/trailbound/internal/services/game/domain/roster"
)

// Session owns the state of one game session built from a roster load.
// It is explicit state passed from the loader's result; there is no ambient
// singleton. The underlying registry is read-only once the session exists.
type Session struct {
	id     string
	result roster.Result
	log    []string
}

// NewSession wraps a load result in a session.
func NewSession(result roster.Result) (*Session, error) {
	sessionID, err := id.NewID()
	if err != nil {
		return nil, fmt.Errorf("generate session id: %w", err)
	}
	s := &Session{id: sessionID, result: result}
	if len(result.Errors) > 0 {
		s.AddLog(fmt.Sprintf("session: character initialization completed with %d issues", len(result.Errors)))
	} else {
		s.AddLog(fmt.Sprintf("session: %d characters ready", len(result.Registry)))
	}
	return s, nil
}

// ID returns the unique identifier assigned to this session.
func (s *Session) ID() string {
	return s.id
}

// Character retrieves a character by id.
func (s *Session) Character(id string) (*character.Character, bool) {
	ch, ok := s.result.Registry[id]
	return ch, ok
}

// AllCharacters returns every loaded character in registry insertion order.
func (s *Session) AllCharacters() []*character.Character {
	characters := make([]*character.Character, 0, len(s.result.Order))
	for _, id := range s.result.Order {
		characters = append(characters, s.result.Registry[id])
	}
	return characters
}

// PlayerCharacter returns the designated player character, if any.
func (s *Session) PlayerCharacter() (*character.Character, bool) {
	if s.result.PlayerID == "" {
		return nil, false
	}
	return s.Character(s.result.PlayerID)
}

// LoadLog returns the chronological trace of the roster load.
func (s *Session) LoadLog() []string {
	return s.result.Log
}

// LoadIssues returns the classified failures from the roster load. The
// session does not decide whether these are fatal; that is the caller's
// policy.
func (s *Session) LoadIssues() []*apperrors.Error {
	return s.result.Errors
}

// HasLoadIssues reports whether the roster load recorded any failures.
func (s *Session) HasLoadIssues() bool {
	return len(s.result.Errors) > 0
}

// AddLog appends a message to the session-wide log.
func (s *Session) AddLog(message string) {
	s.log = append(s.log, message)
}

// Logs returns the session-wide log.
func (s *Session) Logs() []string {
	return s.log
}
