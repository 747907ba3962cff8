package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gamma-omg/pdfsearch-cli/backend"
)

type docSearcher interface {
	Search(ctx context.Context, q backend.SearchQuery) ([]backend.SearchResult, error)
}

// NewSearchServer exposes the backend's hybrid search as an MCP tool so
// agents can query the uploaded library.
func NewSearchServer(client docSearcher, results int) *server.MCPServer {
	tool := mcp.NewTool("search_documents",
		mcp.WithDescription("Hybrid search over the uploaded PDF library"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query"),
		))

	srv := server.NewMCPServer("pdfsearch", "0.1.0", server.WithToolCapabilities(false))
	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		q, err := request.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		res, err := client.Search(ctx, backend.SearchQuery{
			Query:      q,
			TopK:       results,
			SearchType: backend.SearchHybrid,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		var response string
		for _, r := range res {
			raw, err := json.Marshal(struct {
				Score  float64 `json:"score"`
				Source string  `json:"source"`
				Page   int     `json:"page"`
				Text   string  `json:"text"`
			}{
				Score:  r.Score,
				Source: r.Source,
				Page:   r.Page,
				Text:   r.Content,
			})
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			response += fmt.Sprintf("%s\n", string(raw))
		}

		return mcp.NewToolResultText(response), nil
	})

	return srv
}
