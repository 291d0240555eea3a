// Package ports defines the interfaces that connect the interactive session
// to terminal adapters.
//
// # Port Interfaces
//
//   - [LineReader]: reads user input one line at a time
//
// The session (internal/session) depends only on these interfaces.
// Adapters (internal/adapters) implement them with readline for terminals
// and a plain scanner for piped input, and tests supply scripted readers.
package ports
