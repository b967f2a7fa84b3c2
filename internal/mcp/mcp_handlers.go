package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/codegauge/codegauge/core"
	"github.com/codegauge/codegauge/internal/contract"
	"github.com/codegauge/codegauge/internal/snapstore"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) handleAnalyzeMetrics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("path", ""); p != "" {
		cfg.RootPath = p
	}

	metrics, err := core.AnalyzeTree(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	if diffFile := request.GetString("diff_file", ""); diffFile != "" {
		added, deleted, err := core.CountDiffFile(diffFile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("cannot read diff input: %v", err)), nil
		}
		core.ApplyDiffCounts(metrics, added, deleted, cfg.Policy.Weights)
	}

	jsonData, _ := json.MarshalIndent(metrics, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleScanIntegrity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("path", ""); p != "" {
		cfg.RootPath = p
	}

	result, err := core.ScanIntegrity(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("integrity scan failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleScanDeprecations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("path", ""); p != "" {
		cfg.RootPath = p
	}

	warnings, err := core.ScanDeprecations(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("deprecation scan failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(warnings, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleComputeTrend(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("path", ""); p != "" {
		cfg.RootPath = p
	}
	if r := request.GetString("repo", ""); r != "" {
		cfg.RepoName = r
	}
	if b := request.GetString("branch", ""); b != "" {
		cfg.Branch = b
	}

	metrics, err := core.AnalyzeTree(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	store, err := snapstore.OpenStore(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("cannot open snapshot store: %v", err)), nil
	}
	defer func() { _ = store.Close() }()

	trend, err := core.ComputeTrend(ctx, store, cfg, metrics)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("trend computation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(trend, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
