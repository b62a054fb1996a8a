package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onboardai/onboard/internal/core/domain"
)

func TestNewServer(t *testing.T) {
	t.Run("nil pool returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{Session: domain.NewSession("mcp", nil)})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingPool)
	})

	t.Run("nil session returns error", func(t *testing.T) {
		_, err := NewServer(&Ports{Pool: &mockPool{}})
		assert.ErrorIs(t, err, ErrMissingSession)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{Pool: &mockPool{}, Session: domain.NewSession("mcp", nil)})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestServer_OverInMemoryTransport(t *testing.T) {
	ctx := context.Background()
	server, pool, _ := newTestServer(t, "k1")

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.sdk.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	names := make([]string, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"onboard_employee", "ask_policy", "session_trace"}, names)

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "ask_policy",
		Arguments: map[string]any{"question": "How many leaves?"},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, []string{"k1"}, pool.keys)
}
