package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Character errors
	CodeCharacterMissingField Code = "CHARACTER_MISSING_FIELD"
	CodeCharacterEmptyID      Code = "CHARACTER_EMPTY_ID"

	// Roster errors
	CodeRosterDuplicateID      Code = "ROSTER_DUPLICATE_ID"
	CodeRosterMultiplePlayers  Code = "ROSTER_MULTIPLE_PLAYERS"
	CodeRosterNoPlayer         Code = "ROSTER_NO_PLAYER"
	CodeRosterRecordUnreadable Code = "ROSTER_RECORD_UNREADABLE"
	CodeRosterSourceMissing    Code = "ROSTER_SOURCE_MISSING"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)
