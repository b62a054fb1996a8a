package services

import (
	"context"

	"github.com/onboardai/onboard/internal/logger"
)

// ProbeFunc checks whether a model can serve requests.
type ProbeFunc func(ctx context.Context, model string) error

// SelectModel probes candidates in order and returns the first that answers
// without error. Probing stops at the first success. Returns ("", false)
// when every candidate fails or the list is empty.
func SelectModel(ctx context.Context, candidates []string, probe ProbeFunc) (string, bool) {
	for i, model := range candidates {
		if err := ctx.Err(); err != nil {
			logger.Warn("model probe cancelled: %v", err)
			return "", false
		}
		if err := probe(ctx, model); err != nil {
			logger.Debug("model %s (%d/%d) failed probe: %v", model, i+1, len(candidates), err)
			continue
		}
		logger.Debug("model %s answered probe", model)
		return model, true
	}
	return "", false
}
