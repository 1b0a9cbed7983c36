// Package tui is the terminal surface over the session controller and
// the backend gateway. All transcript mutation happens inside Update on
// the event-loop goroutine; gateway calls run as commands and come back
// as messages, so a turn has exactly one suspension point.
package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/innovateinc/hr-assistant/internal/gateway"
	"github.com/innovateinc/hr-assistant/internal/model/chat"
	"github.com/innovateinc/hr-assistant/internal/model/faq"
	"github.com/innovateinc/hr-assistant/internal/session"
)

type view int

const (
	viewChat view = iota
	viewFAQ
	viewTools
)

type turnResultMsg struct {
	reply string
	err   error
}

type faqResultMsg struct {
	body json.RawMessage
	err  error
}

type toolsResultMsg struct {
	body json.RawMessage
	err  error
}

// Model drives the three views: the chat conversation and the two
// one-shot forms (FAQ selector, tools query).
type Model struct {
	controller *session.Controller
	gateway    *gateway.Client
	mcpServer  string

	view   view
	width  int
	height int

	chatInput textinput.Model
	spin      spinner.Model

	faqCursor int
	faqBusy   bool
	faqResult string

	toolsInput  textinput.Model
	toolsBusy   bool
	toolsResult string
}

// NewModel builds the initial TUI state over a rehydrated controller.
func NewModel(controller *session.Controller, gw *gateway.Client, mcpServer string) Model {
	ci := textinput.New()
	ci.Placeholder = "Ask HR-Bot anything..."
	ci.CharLimit = 500
	ci.Focus()

	ti := textinput.New()
	ti.Placeholder = "Free-text diagnostics query..."
	ti.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		controller: controller,
		gateway:    gw,
		mcpServer:  mcpServer,
		chatInput:  ci,
		toolsInput: ti,
		spin:       sp,
		width:      100,
		height:     30,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case turnResultMsg:
		m.controller.Finish(msg.reply, msg.err)
		return m, nil

	case faqResultMsg:
		m.faqBusy = false
		m.faqResult = renderResult(msg.body, msg.err)
		return m, nil

	case toolsResultMsg:
		m.toolsBusy = false
		m.toolsResult = renderResult(msg.body, msg.err)
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.view = (m.view + 1) % 3
			m.syncFocus()
			return m, nil
		}

		switch m.view {
		case viewChat:
			return m.updateChat(msg)
		case viewFAQ:
			return m.updateFAQ(msg)
		case viewTools:
			return m.updateTools(msg)
		}
	}
	return m, nil
}

func (m *Model) syncFocus() {
	m.chatInput.Blur()
	m.toolsInput.Blur()
	switch m.view {
	case viewChat:
		m.chatInput.Focus()
	case viewTools:
		m.toolsInput.Focus()
	}
}

func (m Model) busy() bool {
	return m.controller.Waiting() || m.faqBusy || m.toolsBusy
}

func (m Model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		// while a turn is in flight the submit affordance is disabled;
		// Begin also refuses blank input
		outbound, ok := m.controller.Begin(m.chatInput.Value())
		if !ok {
			return m, nil
		}
		m.chatInput.SetValue("")
		gw := m.gateway
		send := func() tea.Msg {
			reply, err := gw.SendChatTurn(context.Background(), outbound)
			return turnResultMsg{reply: reply, err: err}
		}
		return m, tea.Batch(send, m.spin.Tick)

	case "ctrl+n":
		// new conversation; an in-flight request is unaffected
		_ = m.controller.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m Model) updateFAQ(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	questions := faq.Questions()
	switch msg.String() {
	case "up", "k":
		if m.faqCursor > 0 {
			m.faqCursor--
		}
	case "down", "j":
		if m.faqCursor < len(questions)-1 {
			m.faqCursor++
		}
	case "enter":
		if m.faqBusy {
			return m, nil
		}
		m.faqBusy = true
		m.faqResult = ""
		gw, question, server := m.gateway, questions[m.faqCursor], m.mcpServer
		lookup := func() tea.Msg {
			body, err := gw.LookupFAQ(context.Background(), question, server)
			return faqResultMsg{body: body, err: err}
		}
		return m, tea.Batch(lookup, m.spin.Tick)
	}
	return m, nil
}

func (m Model) updateTools(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		query := strings.TrimSpace(m.toolsInput.Value())
		if query == "" || m.toolsBusy {
			return m, nil
		}
		m.toolsBusy = true
		m.toolsResult = ""
		m.toolsInput.SetValue("")
		gw := m.gateway
		run := func() tea.Msg {
			body, err := gw.RunToolQuery(context.Background(), query)
			return toolsResultMsg{body: body, err: err}
		}
		return m, tea.Batch(run, m.spin.Tick)
	}

	var cmd tea.Cmd
	m.toolsInput, cmd = m.toolsInput.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch m.view {
	case viewChat:
		b.WriteString(m.renderChat())
	case viewFAQ:
		b.WriteString(m.renderFAQ())
	case viewTools:
		b.WriteString(m.renderTools())
	}

	return b.String()
}

func (m Model) renderHeader() string {
	names := []string{"Chat", "FAQ", "Tools"}
	tabs := make([]string, len(names))
	for i, name := range names {
		if view(i) == m.view {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(name)
		}
	}
	return titleStyle.Render("HR Assistant") + "  " + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderChat() string {
	var lines []string
	for _, msg := range m.controller.Transcript() {
		lines = append(lines, renderTurn(msg, m.width))
	}

	// keep the latest turns in view
	available := m.height - 6
	if available < 1 {
		available = 1
	}
	var body []string
	for _, block := range lines {
		body = append(body, strings.Split(block, "\n")...)
	}
	if len(body) > available {
		body = body[len(body)-available:]
	}

	var b strings.Builder
	b.WriteString(strings.Join(body, "\n"))
	b.WriteString("\n\n")

	if m.controller.Waiting() {
		b.WriteString(m.spin.View())
		b.WriteString(dimStyle.Render(" HR-Bot is typing..."))
	} else {
		b.WriteString(m.chatInput.View())
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter send · ctrl+n new conversation · tab switch view · esc quit"))
	return b.String()
}

func renderTurn(msg chat.Message, width int) string {
	var tag string
	switch msg.Role {
	case chat.RoleUser:
		tag = userRoleStyle.Render(" You ")
	case chat.RoleAssistant:
		tag = assistantRoleStyle.Render(" HR-Bot ")
	case chat.RoleError:
		tag = errorRoleStyle.Render(" ! ")
	}

	content := msg.Content
	if width > 10 {
		content = lipgloss.NewStyle().Width(width - 2).Render(content)
	}
	return tag + "\n" + content
}

func (m Model) renderFAQ() string {
	var b strings.Builder
	b.WriteString(dimStyle.Render("Select a question:"))
	b.WriteString("\n")
	for i, q := range faq.Questions() {
		if i == m.faqCursor {
			b.WriteString(selectedStyle.Render("> " + q))
		} else {
			b.WriteString(normalStyle.Render("  " + q))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.faqBusy {
		b.WriteString(m.spin.View())
		b.WriteString(dimStyle.Render(" looking it up..."))
	} else if m.faqResult != "" {
		b.WriteString(m.faqResult)
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select · enter ask · tab switch view · esc quit"))
	return b.String()
}

func (m Model) renderTools() string {
	var b strings.Builder
	b.WriteString(m.toolsInput.View())
	b.WriteString("\n\n")

	if m.toolsBusy {
		b.WriteString(m.spin.View())
		b.WriteString(dimStyle.Render(" running query..."))
	} else if m.toolsResult != "" {
		b.WriteString(m.toolsResult)
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter run · tab switch view · esc quit"))
	return b.String()
}

// renderResult fills the single output slot both success and failure
// share: pretty-printed JSON or a plain error string.
func renderResult(body json.RawMessage, err error) string {
	if err != nil {
		return errorRoleStyle.Render(" ! ") + " " + err.Error()
	}
	var pretty bytes.Buffer
	if indentErr := json.Indent(&pretty, body, "", "  "); indentErr != nil {
		return string(body)
	}
	return pretty.String()
}
