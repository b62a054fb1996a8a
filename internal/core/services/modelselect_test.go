package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type probeRecorder struct {
	failing map[string]bool
	calls   []string
}

func (p *probeRecorder) probe(_ context.Context, model string) error {
	p.calls = append(p.calls, model)
	if p.failing[model] {
		return errors.New("404 model not found")
	}
	return nil
}

func TestSelectModel(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		failing    []string
		want       string
		wantOK     bool
		wantCalls  []string
	}{
		{
			name:       "first succeeds",
			candidates: []string{"A", "B", "C"},
			want:       "A",
			wantOK:     true,
			wantCalls:  []string{"A"},
		},
		{
			name:       "stops at first success",
			candidates: []string{"A", "B", "C"},
			failing:    []string{"A"},
			want:       "B",
			wantOK:     true,
			wantCalls:  []string{"A", "B"},
		},
		{
			name:       "all fail",
			candidates: []string{"A", "B", "C"},
			failing:    []string{"A", "B", "C"},
			wantOK:     false,
			wantCalls:  []string{"A", "B", "C"},
		},
		{
			name:       "empty list",
			candidates: nil,
			wantOK:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &probeRecorder{failing: map[string]bool{}}
			for _, m := range tt.failing {
				rec.failing[m] = true
			}

			got, ok := SelectModel(context.Background(), tt.candidates, rec.probe)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCalls, rec.calls)
		})
	}
}

func TestSelectModel_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := &probeRecorder{}

	got, ok := SelectModel(ctx, []string{"A"}, rec.probe)

	assert.False(t, ok)
	assert.Empty(t, got)
	assert.Empty(t, rec.calls)
}
