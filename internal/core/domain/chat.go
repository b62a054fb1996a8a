package domain

// Role identifies who produced a chat turn.
type Role string

// Chat roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// IsValid returns true if the role is recognised.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAssistant
}

// ChatTurn is one message in the policy chat.
type ChatTurn struct {
	Role Role   `json:"role" yaml:"role"`
	Text string `json:"content" yaml:"content"`
}
