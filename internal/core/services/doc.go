// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go: Google, Gemini and file-system access all live
// behind driven ports.
package services
