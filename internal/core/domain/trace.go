package domain

import (
	"fmt"
	"time"
)

// Actor names used in trace entries.
const (
	ActorSystem       = "System"
	ActorOrchestrator = "Orchestrator"
	ActorToolAgent    = "ToolAgent"
	ActorPolicyAgent  = "PolicyAgent"
)

// TraceEntry records one delegation or outcome for display.
// Entries are immutable once appended.
type TraceEntry struct {
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Actor     string    `json:"actor" yaml:"actor"`
	Action    string    `json:"action" yaml:"action"`
	Detail    string    `json:"detail" yaml:"detail"`
}

// String renders the entry as "[HH:MM:SS] **Actor**: action -> detail".
func (e TraceEntry) String() string {
	return fmt.Sprintf("[%s] **%s**: %s -> %s",
		e.Timestamp.Format("15:04:05"), e.Actor, e.Action, e.Detail)
}
