package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/summa-explorer/summa/internal/pathtoken"
	"github.com/summa-explorer/summa/internal/resolver"
	"github.com/summa-explorer/summa/internal/search"
)

// handleListParts returns every part as "PtXX  Title" lines.
func (s *Server) handleListParts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	parts, err := s.resolver.ListParts()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing parts failed: %v", err)), nil
	}
	if len(parts.Parts) == 0 {
		return mcp.NewToolResultText("The document has no parts."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d part(s):\n", len(parts.Parts)))
	for _, p := range parts.Parts {
		sb.WriteString(fmt.Sprintf("%s  %s\n", pathtoken.Build(p.ID), p.Title))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// browseResult is the JSON returned by the browse tool.
type browseResult struct {
	Token string         `json:"token"`
	Kind  pathtoken.Kind `json:"kind"`
	View  resolver.View  `json:"view"`
}

// handleBrowse resolves a path token and returns the view as indented JSON.
func (s *Server) handleBrowse(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: path"), nil
	}

	view, err := s.resolver.ResolveToken(strings.TrimSpace(path))
	if err != nil {
		switch {
		case errors.Is(err, pathtoken.ErrInvalid):
			return mcp.NewToolResultError(fmt.Sprintf(
				"%v. Tokens look like PtFS-Tr1-Qu2-Ar3; call list_parts for valid part codes.", err,
			)), nil
		case errors.Is(err, resolver.ErrNotFound):
			return mcp.NewToolResultError(fmt.Sprintf("%v.", err)), nil
		default:
			return mcp.NewToolResultError(fmt.Sprintf("browse failed: %v", err)), nil
		}
	}

	data, err := json.MarshalIndent(browseResult{Token: view.Token(), Kind: view.Kind(), View: view}, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding view: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// handleSearchSumma runs a search and lists the hits with their tokens.
func (s *Server) handleSearchSumma(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}
	if s.search == nil {
		return mcp.NewToolResultError("search is not available. Run `summa index` to build the index."), nil
	}

	limit := request.GetInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}
	mode := search.Mode(request.GetString("mode", ""))

	res, err := s.search.Search(ctx, search.Request{Query: query, Limit: limit, Mode: mode})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}
	if len(res.Hits) == 0 {
		return mcp.NewToolResultText("No results found."), nil
	}
	return mcp.NewToolResultText(formatHits(res)), nil
}

// formatHits renders search hits as plain text for agents.
func formatHits(res *search.Result) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d result(s) for %q (%s search):\n", len(res.Hits), res.Query, res.Mode))

	for i, h := range res.Hits {
		sb.WriteString(fmt.Sprintf("\n--- Result %d ---\n", i+1))
		sb.WriteString(fmt.Sprintf("Path: %s\n", h.ID))
		sb.WriteString(fmt.Sprintf("Kind: %s\n", h.Kind))
		if h.Title != "" {
			sb.WriteString(fmt.Sprintf("Title: %s\n", h.Title))
		}
		if h.Snippet != "" {
			sb.WriteString("\n")
			sb.WriteString(h.Snippet)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
