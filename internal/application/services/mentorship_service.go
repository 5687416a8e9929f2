package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Aryan9369/HonestWork/internal/domain/entities"
	"github.com/Aryan9369/HonestWork/internal/domain/providers"
	"github.com/Aryan9369/HonestWork/internal/seed"
	apperrors "github.com/Aryan9369/HonestWork/pkg/errors"
)

// openingMessage is posted by the mentor side when a session activates
const openingMessage = "Hi! I'm here to help. Ask me anything."

// MentorshipService owns the mentor registry, the chat session state
// machine and the message ledger
type MentorshipService struct {
	store    providers.KVStore
	bus      providers.EventBus
	identity *IdentityService
}

// NewMentorshipService creates a new mentorship service
func NewMentorshipService(store providers.KVStore, bus providers.EventBus, identity *IdentityService) *MentorshipService {
	return &MentorshipService{
		store:    store,
		bus:      bus,
		identity: identity,
	}
}

// --- Mentor registry ---

// ListAllMentors returns seed mentors followed by user-registered ones
func (s *MentorshipService) ListAllMentors(ctx context.Context) []entities.Mentor {
	return append(seed.Mentors(), readList[entities.Mentor](ctx, s.store, providers.KeyCustomMentors)...)
}

// ListMentors returns the mentors attached to one organization
func (s *MentorshipService) ListMentors(ctx context.Context, entityID string) []entities.Mentor {
	var out []entities.Mentor
	for _, m := range s.ListAllMentors(ctx) {
		if m.EntityID == entityID {
			out = append(out, m)
		}
	}
	return out
}

// GetMentor looks up a mentor by id
func (s *MentorshipService) GetMentor(ctx context.Context, id string) (*entities.Mentor, error) {
	for _, m := range s.ListAllMentors(ctx) {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, apperrors.NewNotFoundError("mentor not found: " + id)
}

// RegisterMentorInput carries a new mentor registration
type RegisterMentorInput struct {
	EntityID  string `json:"entity_id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Bio       string `json:"bio"`
	Price     int    `json:"price"`
	AvatarURL string `json:"avatar_url"`
}

// RegisterMentor appends a mentor to the registry. The verified badge is
// a snapshot of the current user session's verification at call time;
// it is never re-validated (trust on registration).
func (s *MentorshipService) RegisterMentor(ctx context.Context, input RegisterMentorInput) (*entities.Mentor, error) {
	if input.Name == "" {
		return nil, apperrors.NewValidationError("mentor name is required")
	}
	if input.Price < 0 {
		return nil, apperrors.NewValidationError("mentor price must not be negative")
	}

	mentor := entities.Mentor{
		ID:         uuid.New().String(),
		EntityID:   input.EntityID,
		Name:       input.Name,
		Role:       input.Role,
		Bio:        input.Bio,
		Price:      input.Price,
		IsVerified: s.identity.GetSession(ctx).IsVerified,
		AvatarURL:  input.AvatarURL,
	}
	if mentor.AvatarURL == "" {
		mentor.AvatarURL = entities.PlaceholderLogoURL(mentor.Name)
	}

	if err := appendToList(ctx, s.store, providers.KeyCustomMentors, mentor); err != nil {
		return nil, err
	}
	notifyDataChanged(ctx, s.bus, providers.KeyCustomMentors)
	return &mentor, nil
}

// --- Chat sessions ---

// ListSessions returns all chat sessions in creation order
func (s *MentorshipService) ListSessions(ctx context.Context) []entities.ChatSession {
	return readList[entities.ChatSession](ctx, s.store, providers.KeyChatSessions)
}

// GetSession looks up a chat session by id
func (s *MentorshipService) GetSession(ctx context.Context, sessionID string) (*entities.ChatSession, error) {
	for _, session := range s.ListSessions(ctx) {
		if session.ID == sessionID {
			return &session, nil
		}
	}
	return nil, apperrors.NewNotFoundError("chat session not found: " + sessionID)
}

// BookSession creates a session in PENDING_PAYMENT for the given mentor,
// snapshotting the mentor's current price. Later price changes never
// affect existing sessions.
func (s *MentorshipService) BookSession(ctx context.Context, mentorID, userEmail string) (string, error) {
	mentor, err := s.GetMentor(ctx, mentorID)
	if err != nil {
		return "", err
	}

	session := entities.ChatSession{
		ID:        uuid.New().String(),
		MentorID:  mentor.ID,
		UserEmail: userEmail,
		Status:    entities.SessionStatusPendingPayment,
		PricePaid: mentor.Price,
		CreatedAt: time.Now().UTC(),
	}
	if err := appendToList(ctx, s.store, providers.KeyChatSessions, session); err != nil {
		return "", err
	}
	notifyDataChanged(ctx, s.bus, providers.KeyChatSessions)
	return session.ID, nil
}

// ConfirmPayment transitions a session from PENDING_PAYMENT to ACTIVE
// and posts the mentor's opening message. Any other starting state is
// rejected without touching stored state.
func (s *MentorshipService) ConfirmPayment(ctx context.Context, sessionID string) error {
	if err := s.transition(ctx, sessionID, entities.SessionStatusPendingPayment, entities.SessionStatusActive); err != nil {
		return err
	}
	return s.PostMessage(ctx, sessionID, entities.MessageSenderMentor, openingMessage)
}

// EndSession transitions a session from ACTIVE to COMPLETED. Ending an
// already COMPLETED session is a no-op; ending a session that never
// activated is rejected.
func (s *MentorshipService) EndSession(ctx context.Context, sessionID string) error {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.Status == entities.SessionStatusCompleted {
		return nil
	}
	if err := s.transition(ctx, sessionID, entities.SessionStatusActive, entities.SessionStatusCompleted); err != nil {
		return err
	}
	notifyChatChanged(ctx, s.bus, providers.KeyChatSessions)
	return nil
}

// transition moves one session from exactly `from` to `to`, persisting
// the whole list. Sessions in any other state are left intact.
func (s *MentorshipService) transition(ctx context.Context, sessionID string, from, to entities.SessionStatus) error {
	sessions := s.ListSessions(ctx)
	for i := range sessions {
		if sessions[i].ID != sessionID {
			continue
		}
		if sessions[i].Status != from {
			return apperrors.NewInvalidTransitionError(
				"session " + sessionID + " is " + string(sessions[i].Status) + ", cannot move to " + string(to))
		}
		sessions[i].Status = to
		if err := writeList(ctx, s.store, providers.KeyChatSessions, sessions); err != nil {
			return err
		}
		notifyDataChanged(ctx, s.bus, providers.KeyChatSessions)
		return nil
	}
	return apperrors.NewNotFoundError("chat session not found: " + sessionID)
}

// --- Message ledger ---

// ListMessages returns a session's messages ordered by timestamp ascending
func (s *MentorshipService) ListMessages(ctx context.Context, sessionID string) []entities.ChatMessage {
	all := readList[entities.ChatMessage](ctx, s.store, providers.KeyChatMessages)
	var out []entities.ChatMessage
	for _, m := range all {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// PostMessage appends a message to a session's ledger. Only ACTIVE
// sessions accept messages; senders must re-check status right before
// posting so a delayed reply never lands after the session ended.
func (s *MentorshipService) PostMessage(ctx context.Context, sessionID string, sender entities.MessageSender, text string) error {
	if text == "" {
		return apperrors.NewValidationError("message text is required")
	}
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.Status != entities.SessionStatusActive {
		return apperrors.NewInvalidTransitionError(
			"session " + sessionID + " is " + string(session.Status) + ", messages require ACTIVE")
	}

	message := entities.ChatMessage{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
	if err := appendToList(ctx, s.store, providers.KeyChatMessages, message); err != nil {
		return err
	}
	notifyDataChanged(ctx, s.bus, providers.KeyChatMessages)
	notifyChatChanged(ctx, s.bus, providers.KeyChatMessages)
	return nil
}
