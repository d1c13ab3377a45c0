package moderation

import "errors"

// Sentinel errors for the outcomes callers are expected to branch on.
// Storage failures are wrapped with these so handlers can use errors.Is
// to tell "nothing there" apart from "could not find out".
var (
	// ErrPermissionDenied is returned when an actor's resolved level is
	// below the level an operation requires.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrCaseNotFound is returned when no case exists at the requested
	// number for the guild.
	ErrCaseNotFound = errors.New("case not found")

	// ErrAllocationFailure is returned when a case number could not be
	// issued, typically because the store is unavailable.
	ErrAllocationFailure = errors.New("case number allocation failed")

	// ErrIdentityUnresolvable is returned when an id resolves to neither
	// a guild member nor a reachable user profile.
	ErrIdentityUnresolvable = errors.New("identity unresolvable")

	// ErrUnknownCaseType is returned by Classify for a case type outside
	// the enumerated set. It signals an internal invariant violation.
	ErrUnknownCaseType = errors.New("unknown case type")
)
