// Package domain defines the core business entities for OnboardAI.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Credential: Workspace OAuth token material and refresh metadata
//   - Session: per-UI-session trace log and chat transcript
//   - TraceEntry: one recorded delegation or outcome
//   - ChatTurn: one message in the policy chat
//   - CalendarEvent, MailDraft: parameters for Workspace calls
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
