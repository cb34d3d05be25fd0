// ABOUTME: MCP resource implementations for bodylog.
// ABOUTME: Provides bodylog://recent, bodylog://config, and bodylog://profile.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/bodylog/internal/query"
)

func (s *Server) registerResources() {
	// bodylog://recent - last 14 days of observations
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "bodylog://recent",
		Name:        "Recent Observations",
		Description: "Observations from the last 14 days with abnormality flags",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// bodylog://config - active metrics and thresholds
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "bodylog://config",
		Name:        "Tracking Configuration",
		Description: "Active metric selection and abnormality thresholds",
		MIMEType:    "application/json",
	}, s.handleConfigResource)

	// bodylog://profile - height used for BMI derivation
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "bodylog://profile",
		Name:        "User Profile",
		Description: "Profile height used to derive BMI",
		MIMEType:    "application/json",
	}, s.handleProfileResource)
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	start, end := query.DayWindow(14)
	rows := query.Rows(query.Window(s.st.Entries(), start, end, ""), s.cfg.Thresholds)
	return jsonResource("bodylog://recent", rows)
}

func (s *Server) handleConfigResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource("bodylog://config", s.cfg)
}

func (s *Server) handleProfileResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource("bodylog://profile", s.profile)
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
