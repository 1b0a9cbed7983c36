// Package session owns the in-memory conversation transcript and the
// Idle/Waiting guard that keeps at most one chat turn in flight.
package session

import (
	"context"
	"log"
	"strings"

	"github.com/innovateinc/hr-assistant/internal/model/chat"
)

// ConnectivityErrorText is the fixed message rendered for a failed
// chat turn, whatever the underlying cause.
const ConnectivityErrorText = "Sorry, I'm having trouble connecting. Please try again."

// State is the UI-waiting state. It is never persisted and resets to
// Idle on every start.
type State int

const (
	Idle State = iota
	Waiting
)

// Gateway is the one backend operation the controller drives.
type Gateway interface {
	SendChatTurn(ctx context.Context, messages []chat.Message) (string, error)
}

// History is the durable slot the transcript survives in.
type History interface {
	Load() []chat.Message
	Save([]chat.Message) error
	Clear() error
}

// Controller orchestrates chat turns. It exclusively owns the
// transcript; callers read it through Transcript() copies. All methods
// must be called from a single goroutine — mutual exclusion between
// turns comes from the Waiting guard, not from locks.
type Controller struct {
	gateway    Gateway
	history    History
	transcript []chat.Message
	state      State
}

// New rehydrates the transcript from the durable slot and starts Idle.
func New(gateway Gateway, history History) *Controller {
	return &Controller{
		gateway:    gateway,
		history:    history,
		transcript: history.Load(),
	}
}

// State returns the current waiting state.
func (c *Controller) State() State {
	return c.state
}

// Waiting reports whether a turn is in flight. While true, submit
// affordances must be disabled; Begin refuses further turns.
func (c *Controller) Waiting() bool {
	return c.state == Waiting
}

// Transcript returns a copy of the conversation in insertion order.
func (c *Controller) Transcript() []chat.Message {
	out := make([]chat.Message, len(c.transcript))
	copy(out, c.transcript)
	return out
}

// Begin starts a chat turn: it trims the input, appends the user turn,
// and transitions to Waiting. A blank input or an already in-flight
// turn is a silent no-op (ok=false, nothing changed). On success it
// returns the outbound user/assistant sequence to send, including the
// turn just appended.
func (c *Controller) Begin(input string) (outbound []chat.Message, ok bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" || c.state == Waiting {
		return nil, false
	}

	c.transcript = append(c.transcript, chat.UserMessage(trimmed))
	c.state = Waiting
	return chat.Outbound(c.transcript), true
}

// Finish resolves the in-flight turn and always returns to Idle. On
// success the assistant turn is appended and the transcript persisted;
// on failure an error turn is appended and the durable slot is left
// untouched, so a reload before the next successful turn will not
// replay it.
func (c *Controller) Finish(reply string, callErr error) chat.Message {
	defer func() { c.state = Idle }()

	if callErr != nil {
		log.Printf("[session] chat turn failed: %v", callErr)
		msg := chat.ErrorMessage(ConnectivityErrorText)
		c.transcript = append(c.transcript, msg)
		return msg
	}

	msg := chat.AssistantMessage(reply)
	c.transcript = append(c.transcript, msg)
	if err := c.history.Save(c.transcript); err != nil {
		log.Printf("[session] persist failed: %v", err)
	}
	return msg
}

// Turn runs the full turn algorithm synchronously: Begin, the gateway
// round trip, Finish. It reports whether a turn actually ran.
func (c *Controller) Turn(ctx context.Context, input string) bool {
	outbound, ok := c.Begin(input)
	if !ok {
		return false
	}
	reply, err := c.gateway.SendChatTurn(ctx, outbound)
	c.Finish(reply, err)
	return true
}

// Reset starts a new conversation: in-memory transcript and durable
// slot are both cleared. An in-flight call is unaffected; its Finish
// will append to the now-empty transcript.
func (c *Controller) Reset() error {
	c.transcript = nil
	return c.history.Clear()
}
