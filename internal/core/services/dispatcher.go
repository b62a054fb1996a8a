package services

import (
	"context"
	"fmt"

	"github.com/onboardai/onboard/internal/core/domain"
	"github.com/onboardai/onboard/internal/core/ports/driving"
	"github.com/onboardai/onboard/internal/logger"
)

// Ensure Dispatcher implements the interface.
var _ driving.Dispatcher = (*Dispatcher)(nil)

// Dispatcher sequences the leaf components and traces each step.
type Dispatcher struct {
	actions   driving.ActionClient
	responder driving.QueryResponder
}

// NewDispatcher creates a dispatcher over one action client and one responder.
func NewDispatcher(actions driving.ActionClient, responder driving.QueryResponder) *Dispatcher {
	return &Dispatcher{
		actions:   actions,
		responder: responder,
	}
}

// RunOnboardingSequence schedules the induction meeting, then drafts the
// welcome mail. A calendar failure does not stop the mail step; both
// outcomes land in the trace and the sequence always reports completion.
func (d *Dispatcher) RunOnboardingSequence(ctx context.Context, sess *domain.Session, employee string) string {
	logger.Debug("onboarding %q", employee)
	sess.Record(domain.ActorOrchestrator, "Task Received", fmt.Sprintf("Onboard %s", employee))

	sess.Record(domain.ActorOrchestrator, "Delegating", "ToolAgent -> Calendar")
	calendar := d.actions.ScheduleInductionEvent(ctx, employee)
	sess.Record(domain.ActorToolAgent, "Output", calendar)

	sess.Record(domain.ActorOrchestrator, "Delegating", "ToolAgent -> Gmail")
	mail := d.actions.DraftWelcomeEmail(ctx, employee)
	sess.Record(domain.ActorToolAgent, "Output", mail)

	sess.Record(domain.ActorOrchestrator, "Task Completed", domain.MsgOnboardingComplete)
	return domain.MsgOnboardingComplete
}

// AnswerQuery delegates query to the responder and returns its answer unchanged.
func (d *Dispatcher) AnswerQuery(ctx context.Context, sess *domain.Session, query string) string {
	sess.Record(domain.ActorOrchestrator, "Delegating", "PolicyAgent -> Gemini")
	answer := d.responder.Answer(ctx, query)
	sess.Record(domain.ActorPolicyAgent, "Output", domain.MsgResponseGenerated)
	return answer
}

// Ask runs one chat round.
func (d *Dispatcher) Ask(ctx context.Context, sess *domain.Session, query string) string {
	sess.AppendTurn(domain.RoleUser, query)
	answer := d.AnswerQuery(ctx, sess, query)
	sess.AppendTurn(domain.RoleAssistant, answer)
	return answer
}
