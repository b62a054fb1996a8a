// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CredentialStore: Credential cache persistence (token file)
//   - ConsentFlow: OAuth refresh and interactive consent
//   - WorkspaceClientFactory: Calendar and Gmail clients over a TokenProvider
//   - CompletionClientFactory: Generative-language clients keyed by API key
//   - SessionStore: In-memory session state owned by the UI
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - TraceRecorder: Receives the model selection entry. Without it, selection is only logged.
//   - FileWatcher: Reloads the credential cache when another process rewrites it.
package driven
