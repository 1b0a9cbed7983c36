package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/innovateinc/hr-assistant/internal/config"
	"github.com/innovateinc/hr-assistant/internal/gateway"
	"github.com/innovateinc/hr-assistant/internal/session"
	"github.com/innovateinc/hr-assistant/internal/store"
	"github.com/innovateinc/hr-assistant/internal/tui"
)

func main() {
	// the TUI owns the terminal, so route logs to a file
	if f, err := tea.LogToFile("hr-assistant.log", "chat"); err == nil {
		defer f.Close()
	} else {
		log.SetOutput(os.Stderr)
	}

	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	history := store.NewHistory(cfg.Client.HistoryFile)
	gw := gateway.NewClient(cfg.Client.BaseURL)
	controller := session.New(gw, history)

	m := tui.NewModel(controller, gw, cfg.Client.MCPServer)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
