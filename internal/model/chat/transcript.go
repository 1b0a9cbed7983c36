package chat

// Outbound returns the user/assistant subsequence of the transcript in
// insertion order. This is the exact payload shape the backend accepts;
// error turns never leave the client.
func Outbound(transcript []Message) []Message {
	out := make([]Message, 0, len(transcript))
	for _, msg := range transcript {
		if msg.Role == RoleUser || msg.Role == RoleAssistant {
			out = append(out, msg)
		}
	}
	return out
}

// WellFormed reports whether every message carries a known role. A
// persisted transcript failing this check is treated as no history.
func WellFormed(transcript []Message) bool {
	for _, msg := range transcript {
		if !msg.Role.Valid() {
			return false
		}
	}
	return true
}

// Request is the body of POST /api/chat.
type Request struct {
	Messages []Message `json:"messages"`
}

// Response is the 2xx body of POST /api/chat.
type Response struct {
	Response string `json:"response"`
}
