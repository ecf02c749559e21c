// Package services defines shared utilities consumed by the workflow
// functions and the external tool clients.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that keep failure
//     classification (usage vs format vs subprocess) uniform, and the exit
//     code mapping derived from them.
//   - Context helpers that stamp the active workflow operation for logging.
//
// The subpackages hold one client per external collaborator; each client
// only constructs argument lists and delegates execution, so the tools stay
// swappable and the clients stay testable.
package services
