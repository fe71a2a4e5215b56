// Package roster turns a batch of raw character records into a validated,
// linked registry.
//
// Load is total: given any input batch it returns a Result. Per-record and
// per-relationship issues are accumulated in the result's log and error list
// instead of aborting the batch; the caller decides whether accumulated
// issues constitute an overall failure.
package roster

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/okvist/trailbound/internal/platform/errors"
	"github.com/okvist/trailbound/internal/services/game/domain/character"
)

const tracerName = "github.com/okvist/trailbound/internal/services/game/domain/roster"

// Result holds the outcome of one load run.
//
// Registry maps character id to the registry-owned character; Order records
// insertion order so iteration stays deterministic. The registry is
// exclusively owned by the Result and is read-only to consumers once Load
// returns.
type Result struct {
	Registry map[string]*character.Character
	Order    []string
	// PlayerID is the id of the last inserted character with the player
	// flag, empty when none was designated.
	PlayerID string
	// Log is the chronological, append-only trace of the run.
	Log []string
	// Errors is the classified subset of conditions that count as failures.
	// Dangling relationship references stay in Log only.
	Errors []*apperrors.Error
}

// Loader builds rosters from raw record batches. The zero value is ready to
// use; each Load run starts from fresh state, so runs are independent and
// idempotent.
type Loader struct {
	tracer trace.Tracer
}

// NewLoader creates a Loader.
func NewLoader() *Loader {
	return &Loader{tracer: otel.Tracer(tracerName)}
}

// Load processes the record batch in order: construct each character,
// register unique ids (first occurrence wins), designate the player (last
// flagged character wins), then resolve relationship identifiers against the
// completed registry. One malformed record never aborts the batch.
func (l *Loader) Load(ctx context.Context, records []character.Record) Result {
	tracer := l.tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	_, span := tracer.Start(ctx, "roster.Load",
		trace.WithAttributes(attribute.Int("roster.records", len(records))))
	defer span.End()

	run := &loadRun{result: Result{Registry: make(map[string]*character.Character)}}
	run.logf("roster: loading %d character records", len(records))

	constructed := run.constructAll(records)
	run.registerAll(constructed)

	if len(run.result.Registry) > 0 && run.result.PlayerID == "" {
		run.errorf(apperrors.CodeRosterNoPlayer, nil,
			"no player character (is_player: true) was designated among the loaded characters")
	}

	run.linkRelationships()

	if len(run.result.Errors) > 0 {
		run.logf("roster: load completed with %d issues", len(run.result.Errors))
	} else {
		run.logf("roster: all characters loaded and linked")
	}

	span.SetAttributes(
		attribute.Int("roster.registered", len(run.result.Registry)),
		attribute.Int("roster.issues", len(run.result.Errors)),
	)
	return run.result
}

// loadRun carries the mutable state of a single Load invocation.
type loadRun struct {
	result Result
}

func (r *loadRun) logf(format string, args ...any) {
	r.result.Log = append(r.result.Log, fmt.Sprintf(format, args...))
}

// errorf records a classified failure and mirrors it into the chronological
// log so the log stays a complete trace of the run.
func (r *loadRun) errorf(code apperrors.Code, metadata map[string]string, format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	r.result.Errors = append(r.result.Errors, apperrors.WithMetadata(code, message, metadata))
	r.result.Log = append(r.result.Log, "ERROR: "+message)
}

// constructAll converts records into characters, preserving construction
// order. Failed records are reported and skipped.
func (r *loadRun) constructAll(records []character.Record) []*character.Character {
	constructed := make([]*character.Character, 0, len(records))
	for i, rec := range records {
		source := rec.Source
		if source == "" {
			source = fmt.Sprintf("record %d", i)
		}
		if rec.Err != nil {
			r.errorf(apperrors.CodeRosterRecordUnreadable,
				map[string]string{"source": source},
				"failed to read character record %q: %v", source, rec.Err)
			continue
		}
		ch, err := character.FromRecord(rec)
		if err != nil {
			code := apperrors.CodeRosterRecordUnreadable
			metadata := map[string]string{"source": source}
			var appErr *apperrors.Error
			if errors.As(err, &appErr) {
				code = appErr.Code
				for key, value := range appErr.Metadata {
					metadata[key] = value
				}
			}
			r.errorf(code, metadata, "failed to load character record %q: %v", source, err)
			continue
		}
		constructed = append(constructed, ch)
	}
	return constructed
}

// registerAll walks constructed characters in order, rejecting duplicate ids
// (the first registered character is retained) and tracking the player
// designation with last-wins semantics.
func (r *loadRun) registerAll(constructed []*character.Character) {
	for _, ch := range constructed {
		if _, exists := r.result.Registry[ch.ID]; exists {
			r.errorf(apperrors.CodeRosterDuplicateID,
				map[string]string{"id": ch.ID},
				"duplicate character id %q; original kept, duplicate ignored", ch.ID)
			continue
		}
		r.result.Registry[ch.ID] = ch
		r.result.Order = append(r.result.Order, ch.ID)

		if !ch.IsPlayer {
			continue
		}
		if r.result.PlayerID != "" {
			r.errorf(apperrors.CodeRosterMultiplePlayers,
				map[string]string{"old": r.result.PlayerID, "new": ch.ID},
				"multiple player characters defined: old %q, new %q; using the latter", r.result.PlayerID, ch.ID)
		}
		r.result.PlayerID = ch.ID
	}
	r.logf("roster: registered %d unique characters", len(r.result.Registry))
}
