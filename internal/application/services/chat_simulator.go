package services

import (
	"context"
	"math/rand"
	"time"

	"github.com/Aryan9369/HonestWork/internal/domain/entities"
	"github.com/Aryan9369/HonestWork/internal/infrastructure/observability"
	apperrors "github.com/Aryan9369/HonestWork/pkg/errors"
)

// cannedReplies is the pool the simulated mentor answers from
var cannedReplies = []string{
	"That's a great question! Based on my experience...",
	"Could you elaborate more on that?",
	"Yes, absolutely. The interview process usually takes 3 rounds.",
	"I'd recommend focusing on LeetCode Mediums for that role.",
	"Let me check my schedule and get back to you properly.",
}

// ChatSimulator produces the mentor side of a chat in local deployments:
// a canned reply lands a fixed delay after each user message. The reply
// path re-reads the session status immediately before posting, so a
// reply scheduled while the session was ACTIVE is dropped if the session
// ended in the meantime.
type ChatSimulator struct {
	mentorship *MentorshipService
	delay      time.Duration
}

// NewChatSimulator creates a new chat simulator
func NewChatSimulator(mentorship *MentorshipService, delay time.Duration) *ChatSimulator {
	return &ChatSimulator{
		mentorship: mentorship,
		delay:      delay,
	}
}

// OnUserMessage schedules one auto-reply. One-shot timer, no retry.
// The timer outlives the triggering request, so the reply lands even
// though the caller's context is long gone by then.
func (c *ChatSimulator) OnUserMessage(ctx context.Context, sessionID string) {
	detached := context.WithoutCancel(ctx)
	timer := time.NewTimer(c.delay)
	go func() {
		defer timer.Stop()
		<-timer.C
		c.reply(detached, sessionID)
	}()
}

func (c *ChatSimulator) reply(ctx context.Context, sessionID string) {
	session, err := c.mentorship.GetSession(ctx, sessionID)
	if err != nil || session.Status != entities.SessionStatusActive {
		return
	}

	text := cannedReplies[rand.Intn(len(cannedReplies))]
	err = c.mentorship.PostMessage(ctx, sessionID, entities.MessageSenderMentor, text)
	if err != nil && !apperrors.IsType(err, apperrors.ErrorTypeInvalidTransition) {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("session_id", sessionID).Msg("auto-reply failed")
	}
}
