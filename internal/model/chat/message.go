package chat

// Role identifies who produced a transcript turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	// RoleError marks a client-synthesized turn describing a failed
	// request. Error turns are rendered and kept in the transcript but
	// are never part of an outbound payload.
	RoleError Role = "error"
)

// Valid reports whether the role is one the transcript accepts.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleError:
		return true
	}
	return false
}

// Message is one turn in a conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// UserMessage builds a user turn.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage builds an assistant turn.
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// ErrorMessage builds a client-side error turn.
func ErrorMessage(content string) Message {
	return Message{Role: RoleError, Content: content}
}
