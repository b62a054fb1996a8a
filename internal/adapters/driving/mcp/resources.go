package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/onboardai/onboard/internal/core/domain"
)

const uriScheme = "onboard://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.sdk.AddResource(&mcp.Resource{
		URI:         uriScheme + "policy",
		Name:        "policy",
		Description: "The HR policy rules that ground every answer",
		MIMEType:    "text/plain",
	}, s.handlePolicyResource)

	s.sdk.AddResource(&mcp.Resource{
		URI:         uriScheme + "session/transcript",
		Name:        "transcript",
		Description: "Trace log and chat transcript of this server session",
		MIMEType:    "application/json",
	}, s.handleTranscriptResource)
}

func (s *Server) handlePolicyResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     domain.PolicyPreamble,
		}},
	}, nil
}

func (s *Server) handleTranscriptResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(s.ports.Session.Snapshot(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling transcript: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
