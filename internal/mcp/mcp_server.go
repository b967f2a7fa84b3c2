// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/codegauge/codegauge/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Codegauge MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Codegauge Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	// --- 1. Tool: analyze_metrics ---
	s.AddTool(mcp.NewTool("analyze_metrics",
		mcp.WithDescription("Compute per-file and aggregate code quality metrics for a source tree."),
		mcp.WithString("path", mcp.Description("Path to the source tree (defaults to the configured root).")),
		mcp.WithString("diff_file", mcp.Description("Optional unified diff file whose added/deleted lines feed the quality score.")),
	), h.handleAnalyzeMetrics)

	// --- 2. Tool: scan_integrity ---
	s.AddTool(mcp.NewTool("scan_integrity",
		mcp.WithDescription("Hash a source tree deterministically and flag secrets, debug leftovers, binary and oversized files."),
		mcp.WithString("path", mcp.Description("Path to the source tree.")),
	), h.handleScanIntegrity)

	// --- 3. Tool: scan_deprecations ---
	s.AddTool(mcp.NewTool("scan_deprecations",
		mcp.WithDescription("Scan a source tree for usages of known deprecated APIs across languages."),
		mcp.WithString("path", mcp.Description("Path to the source tree.")),
	), h.handleScanDeprecations)

	// --- 4. Tool: compute_trend ---
	s.AddTool(mcp.NewTool("compute_trend",
		mcp.WithDescription("Compare the current codebase quality against the stored baseline snapshot."),
		mcp.WithString("path", mcp.Description("Path to the source tree.")),
		mcp.WithString("repo", mcp.Description("Logical repository name for the baseline lookup.")),
		mcp.WithString("branch", mcp.Description("Branch name for the baseline lookup. Defaults to 'main'.")),
	), h.handleComputeTrend)

	return s
}

// StartMCPServer starts the Codegauge MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
