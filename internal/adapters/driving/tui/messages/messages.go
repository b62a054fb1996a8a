// Package messages defines Bubbletea message types for the TUI.
package messages

// OnboardingCompleted carries the status of an onboarding run.
type OnboardingCompleted struct {
	Employee string
	Status   string
}

// AnswerReceived carries the responder's answer to a chat question.
type AnswerReceived struct {
	Query  string
	Answer string
}

// Field identifies an input on the single TUI screen.
type Field int

const (
	// FieldAPIKey is the masked API key input.
	FieldAPIKey Field = iota
	// FieldEmployee is the employee name input.
	FieldEmployee
	// FieldQuestion is the policy question input.
	FieldQuestion
)

// FieldCount is the number of inputs.
const FieldCount = 3

// String returns the string representation of the field.
func (f Field) String() string {
	switch f {
	case FieldAPIKey:
		return "api_key"
	case FieldEmployee:
		return "employee"
	case FieldQuestion:
		return "question"
	default:
		return "unknown"
	}
}

// Next returns the field after f, wrapping around.
func (f Field) Next() Field {
	return (f + 1) % FieldCount
}

// Prev returns the field before f, wrapping around.
func (f Field) Prev() Field {
	return (f + FieldCount - 1) % FieldCount
}
