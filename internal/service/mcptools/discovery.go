// Package mcptools discovers tools from an MCP server over SSE so the
// FAQ endpoint can advertise them to the model.
package mcptools

import (
	"context"
	"fmt"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ToolInfo is the subset of a tool definition folded into the prompt.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Describe renders the tool as a single prompt line.
func (t ToolInfo) Describe() string {
	return fmt.Sprintf("%s: %s", t.Name, t.Description)
}

// ListTools connects to the MCP server at url, lists its tools, and
// closes the session. One round trip per FAQ request; the connection
// is not kept alive.
func ListTools(ctx context.Context, url string) ([]ToolInfo, error) {
	client := mcp.NewClient(&mcp.Implementation{Name: "hr-assistant", Version: "0.1.0"}, nil)

	session, err := client.Connect(ctx, &mcp.SSEClientTransport{Endpoint: url}, nil)
	if err != nil {
		return nil, fmt.Errorf("connect to MCP server %s: %w", url, err)
	}
	defer session.Close()

	result, err := session.ListTools(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list MCP tools: %w", err)
	}

	tools := make([]ToolInfo, 0, len(result.Tools))
	for _, tool := range result.Tools {
		tools = append(tools, ToolInfo{Name: tool.Name, Description: tool.Description})
	}

	log.Printf("[mcp] discovered %d tools from %s", len(tools), url)
	return tools, nil
}
