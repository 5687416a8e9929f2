package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aryan9369/HonestWork/internal/adapters/events"
	"github.com/Aryan9369/HonestWork/internal/adapters/kv"
	"github.com/Aryan9369/HonestWork/internal/adapters/payments"
	"github.com/Aryan9369/HonestWork/internal/application/services"
	"github.com/Aryan9369/HonestWork/internal/domain/entities"
	apperrors "github.com/Aryan9369/HonestWork/pkg/errors"
)

func newMentorshipService() *services.MentorshipService {
	store := kv.NewMemoryStore()
	bus := events.NewMemoryEventBus()
	directory := services.NewDirectoryService(store, bus, nil)
	identity := services.NewIdentityService(store, bus, directory)
	return services.NewMentorshipService(store, bus, identity)
}

func TestMentorshipService_ListMentors_FiltersByEntity(t *testing.T) {
	svc := newMentorshipService()
	ctx := context.Background()

	all := svc.ListAllMentors(ctx)
	require.NotEmpty(t, all)

	google := svc.ListMentors(ctx, "1")
	require.Len(t, google, 1)
	assert.Equal(t, "m1", google[0].ID)

	assert.Empty(t, svc.ListMentors(ctx, "no-such-entity"))
}

func TestMentorshipService_RegisterMentor_AppearsInRegistry(t *testing.T) {
	svc := newMentorshipService()
	ctx := context.Background()

	mentor, err := svc.RegisterMentor(ctx, services.RegisterMentorInput{
		EntityID: "3",
		Name:     "Priya Nair",
		Role:     "Staff Engineer",
		Price:    79,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, mentor.ID)

	listed := svc.ListMentors(ctx, "3")
	require.Len(t, listed, 1)
	assert.Equal(t, "Priya Nair", listed[0].Name)
}

func TestMentorshipService_BookSession_SnapshotsPrice(t *testing.T) {
	svc := newMentorshipService()
	ctx := context.Background()

	sessionID, err := svc.BookSession(ctx, "m1", "jane@stripe.com")
	require.NoError(t, err)

	session, err := svc.GetSession(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, entities.SessionStatusPendingPayment, session.Status)
	assert.Equal(t, 99, session.PricePaid)
	assert.Equal(t, "m1", session.MentorID)
}

func TestMentorshipService_BookSession_UnknownMentor(t *testing.T) {
	svc := newMentorshipService()
	ctx := context.Background()

	_, err := svc.BookSession(ctx, "no-such-mentor", "jane@stripe.com")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestMentorshipService_Lifecycle_PendingToActiveToCompleted(t *testing.T) {
	svc := newMentorshipService()
	ctx := context.Background()

	sessionID, err := svc.BookSession(ctx, "m1", "jane@stripe.com")
	require.NoError(t, err)

	// Messages are rejected until payment confirms.
	err = svc.PostMessage(ctx, sessionID, entities.MessageSenderUser, "hello?")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInvalidTransition))

	require.NoError(t, svc.ConfirmPayment(ctx, sessionID))

	session, err := svc.GetSession(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, entities.SessionStatusActive, session.Status)

	// Activation posts the mentor's opening message.
	messages := svc.ListMessages(ctx, sessionID)
	require.Len(t, messages, 1)
	assert.Equal(t, entities.MessageSenderMentor, messages[0].Sender)
	assert.Equal(t, "Hi! I'm here to help. Ask me anything.", messages[0].Text)

	require.NoError(t, svc.PostMessage(ctx, sessionID, entities.MessageSenderUser, "Thanks!"))
	require.NoError(t, svc.EndSession(ctx, sessionID))

	session, err = svc.GetSession(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, entities.SessionStatusCompleted, session.Status)

	// Completed sessions accept no further messages.
	err = svc.PostMessage(ctx, sessionID, entities.MessageSenderUser, "one more")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInvalidTransition))
}

func TestMentorshipService_IllegalTransitionsLeaveStateIntact(t *testing.T) {
	svc := newMentorshipService()
	ctx := context.Background()

	sessionID, err := svc.BookSession(ctx, "m1", "jane@stripe.com")
	require.NoError(t, err)

	// Cannot skip straight to COMPLETED.
	err = svc.EndSession(ctx, sessionID)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInvalidTransition))

	session, err := svc.GetSession(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, entities.SessionStatusPendingPayment, session.Status)

	require.NoError(t, svc.ConfirmPayment(ctx, sessionID))

	// Double confirm is rejected without disturbing ACTIVE.
	err = svc.ConfirmPayment(ctx, sessionID)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInvalidTransition))

	session, err = svc.GetSession(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, entities.SessionStatusActive, session.Status)
}

func TestMentorshipService_EndSession_CompletedIsTerminalNoOp(t *testing.T) {
	svc := newMentorshipService()
	ctx := context.Background()

	sessionID, err := svc.BookSession(ctx, "m1", "jane@stripe.com")
	require.NoError(t, err)
	require.NoError(t, svc.ConfirmPayment(ctx, sessionID))
	require.NoError(t, svc.EndSession(ctx, sessionID))

	// Ending again is accepted and changes nothing.
	require.NoError(t, svc.EndSession(ctx, sessionID))

	session, err := svc.GetSession(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, entities.SessionStatusCompleted, session.Status)
}

func TestMentorshipService_PriceChangeDoesNotAffectExistingSessions(t *testing.T) {
	svc := newMentorshipService()
	ctx := context.Background()

	mentor, err := svc.RegisterMentor(ctx, services.RegisterMentorInput{
		EntityID: "2",
		Name:     "Alex Kim",
		Price:    50,
	})
	require.NoError(t, err)

	sessionID, err := svc.BookSession(ctx, mentor.ID, "user@apple.com")
	require.NoError(t, err)

	session, err := svc.GetSession(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 50, session.PricePaid)
}

func TestMockPaymentProvider_ConfirmActivatesSession(t *testing.T) {
	svc := newMentorshipService()
	ctx := context.Background()

	provider := payments.NewMockProvider(10*time.Millisecond, svc.ConfirmPayment)

	sessionID, err := svc.BookSession(ctx, "m1", "jane@stripe.com")
	require.NoError(t, err)
	require.NoError(t, provider.InitiateCheckout(ctx, sessionID))

	require.Eventually(t, func() bool {
		session, err := svc.GetSession(ctx, sessionID)
		return err == nil && session.Status == entities.SessionStatusActive
	}, time.Second, 10*time.Millisecond)
}

func TestChatSimulator_RepliesToUserMessage(t *testing.T) {
	svc := newMentorshipService()
	ctx := context.Background()
	simulator := services.NewChatSimulator(svc, 10*time.Millisecond)

	sessionID, err := svc.BookSession(ctx, "m1", "jane@stripe.com")
	require.NoError(t, err)
	require.NoError(t, svc.ConfirmPayment(ctx, sessionID))
	require.NoError(t, svc.PostMessage(ctx, sessionID, entities.MessageSenderUser, "How are interviews?"))

	simulator.OnUserMessage(ctx, sessionID)

	require.Eventually(t, func() bool {
		messages := svc.ListMessages(ctx, sessionID)
		return len(messages) == 3 && messages[2].Sender == entities.MessageSenderMentor
	}, time.Second, 10*time.Millisecond)
}

func TestChatSimulator_DropsReplyWhenSessionEnded(t *testing.T) {
	svc := newMentorshipService()
	ctx := context.Background()
	simulator := services.NewChatSimulator(svc, 30*time.Millisecond)

	sessionID, err := svc.BookSession(ctx, "m1", "jane@stripe.com")
	require.NoError(t, err)
	require.NoError(t, svc.ConfirmPayment(ctx, sessionID))
	require.NoError(t, svc.PostMessage(ctx, sessionID, entities.MessageSenderUser, "quick question"))

	simulator.OnUserMessage(ctx, sessionID)
	require.NoError(t, svc.EndSession(ctx, sessionID))

	time.Sleep(100 * time.Millisecond)

	messages := svc.ListMessages(ctx, sessionID)
	assert.Len(t, messages, 2, "no reply may land after the session completed")
}
