package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/onboardai/onboard/internal/core/domain"
)

// OnboardInput is the input schema for the onboard_employee tool.
type OnboardInput struct {
	Name string `json:"name" jsonschema:"full name of the new employee"`
}

// OnboardOutput is the output schema for the onboard_employee tool.
type OnboardOutput struct {
	Status string   `json:"status"`
	Trace  []string `json:"trace"`
}

// AskInput is the input schema for the ask_policy tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"an HR policy question such as leave or work hours"`
}

// AskOutput is the output schema for the ask_policy tool.
type AskOutput struct {
	Answer string `json:"answer"`
}

// TraceInput is the (empty) input schema for the session_trace tool.
type TraceInput struct{}

// TraceOutput is the output schema for the session_trace tool.
type TraceOutput struct {
	Entries []TraceEntryOutput `json:"entries"`
	Count   int                `json:"count"`
}

// TraceEntryOutput is one trace entry, newest first.
type TraceEntryOutput struct {
	Timestamp string `json:"timestamp"`
	Actor     string `json:"actor"`
	Action    string `json:"action"`
	Detail    string `json:"detail"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.sdk, &mcp.Tool{
		Name:        "onboard_employee",
		Description: "Schedule the induction meeting and prepare the welcome mail for a new employee",
	}, s.handleOnboard)

	mcp.AddTool(s.sdk, &mcp.Tool{
		Name:        "ask_policy",
		Description: "Answer an HR policy question from the company rules",
	}, s.handleAsk)

	mcp.AddTool(s.sdk, &mcp.Tool{
		Name:        "session_trace",
		Description: "List the delegations and outcomes recorded by this server, newest first",
	}, s.handleTrace)
}

func (s *Server) handleOnboard(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input OnboardInput,
) (*mcp.CallToolResult, OnboardOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, OnboardOutput{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, domain.MsgEnterName)
	}

	// Record into a scratch session so concurrent runs over HTTP do not
	// interleave, then fold the block into the shared trace.
	run := s.ports.Session.Scratch()
	status := s.dispatcher(ctx).RunOnboardingSequence(ctx, run, name)
	entries := run.Trace()
	s.ports.Session.Merge(entries)

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.String())
	}

	return nil, OnboardOutput{Status: status, Trace: lines}, nil
}

func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	q := strings.TrimSpace(input.Question)
	if q == "" {
		return nil, AskOutput{}, fmt.Errorf("%w: question is empty", domain.ErrInvalidInput)
	}

	answer := s.dispatcher(ctx).Ask(ctx, s.ports.Session, q)
	return nil, AskOutput{Answer: answer}, nil
}

func (s *Server) handleTrace(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ TraceInput,
) (*mcp.CallToolResult, TraceOutput, error) {
	entries := s.ports.Session.TraceNewestFirst()
	out := TraceOutput{
		Entries: make([]TraceEntryOutput, len(entries)),
		Count:   len(entries),
	}
	for i, e := range entries {
		out.Entries[i] = TraceEntryOutput{
			Timestamp: e.Timestamp.Format(time.RFC3339),
			Actor:     e.Actor,
			Action:    e.Action,
			Detail:    e.Detail,
		}
	}
	return nil, out, nil
}
