package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listPartsTool defines the list_parts MCP tool.
var listPartsTool = mcp.NewTool("list_parts",
	mcp.WithDescription("List the parts of the Summa Theologica with their path tokens and titles. Start browsing here."),
)

// browseTool defines the browse MCP tool.
var browseTool = mcp.NewTool("browse",
	mcp.WithDescription("Resolve a path token such as PtFS, PtFS-Tr1, PtFS-Tr1-Qu2 or PtFS-Tr1-Qu2-Ar3. "+
		"Returns the treatises of a part, the questions of a treatise, the articles of a question, "+
		"or the full text of an article with its objections, answer and replies."),
	mcp.WithString("path",
		mcp.Required(),
		mcp.Description("Path token: Pt<part code>, then optionally -Tr<n>, -Qu<n> and -Ar<n> in that order"),
	),
)

// searchSummaTool defines the search_summa MCP tool.
var searchSummaTool = mcp.NewTool("search_summa",
	mcp.WithDescription("Search the titles and text of the Summa. Each result carries a path token to pass to browse."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Words to search for"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 10)"),
	),
	mcp.WithString("mode",
		mcp.Description("Index to search; semantic falls back to keyword when it finds nothing"),
		mcp.Enum("keyword", "semantic"),
	),
)
