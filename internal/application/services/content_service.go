package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Aryan9369/HonestWork/internal/domain/entities"
	"github.com/Aryan9369/HonestWork/internal/domain/providers"
	"github.com/Aryan9369/HonestWork/internal/infrastructure/observability"
	"github.com/Aryan9369/HonestWork/internal/seed"
	apperrors "github.com/Aryan9369/HonestWork/pkg/errors"
)

// ContentService is the content store: reviews, questions and answers,
// interview reports and salary submissions, all keyed by owning
// organization id. Reads merge the seed layer with the persisted overlay
// and apply the helpful-vote ledger; writes always target the overlay.
type ContentService struct {
	store providers.KVStore
	bus   providers.EventBus
}

// NewContentService creates a new content service
func NewContentService(store providers.KVStore, bus providers.EventBus) *ContentService {
	return &ContentService{
		store: store,
		bus:   bus,
	}
}

// --- Reviews ---

// ListReviews returns all reviews for an organization in insertion order:
// seed reviews first, then user submissions, with the vote-ledger overlay
// applied and missing departments normalized to "Other". Ordering beyond
// insertion order is the caller's concern.
func (s *ContentService) ListReviews(ctx context.Context, entityID string) []entities.Review {
	var merged []entities.Review
	for _, r := range seed.Reviews() {
		if r.EntityID == entityID {
			merged = append(merged, r)
		}
	}
	merged = append(merged, readList[entities.Review](ctx, s.store, providers.ReviewsKey(entityID))...)

	votes := s.readVoteLedger(ctx)
	upvoted := s.readUpvoteSet(ctx)

	for i := range merged {
		if merged[i].Department == "" {
			merged[i].Department = entities.DepartmentOther
		}
		merged[i].HelpfulVotes += votes[merged[i].ID]
		_, merged[i].IsUpvoted = upvoted[merged[i].ID]
	}
	return merged
}

// AddReview validates and appends a review to the organization's
// persisted list. The review receives a fresh id and timestamp when the
// caller left them unset.
func (s *ContentService) AddReview(ctx context.Context, entityID string, review *entities.Review) error {
	if review == nil {
		return apperrors.NewValidationError("review is required")
	}
	if review.Rating < 1 || review.Rating > 5 {
		return apperrors.NewValidationError(fmt.Sprintf("rating must be between 1 and 5, got %d", review.Rating))
	}
	for name, value := range review.SubRatings() {
		if value < 1 || value > 5 {
			return apperrors.NewValidationError(fmt.Sprintf("%s must be between 1 and 5, got %d", name, value))
		}
	}

	review.EntityID = entityID
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}
	if review.Department == "" {
		review.Department = entities.DepartmentOther
	}
	// The overlay only ever stores base counts; displayed counts come
	// from the ledger at read time.
	review.IsUpvoted = false

	if err := appendToList(ctx, s.store, providers.ReviewsKey(entityID), *review); err != nil {
		return err
	}
	notifyDataChanged(ctx, s.bus, providers.ReviewsKey(entityID))
	return nil
}

// ToggleHelpfulVote flips the local user's upvote on a review. The first
// call adds +1 to the ledger delta, the next removes it; a pair of calls
// always returns the displayed count to its starting value.
func (s *ContentService) ToggleHelpfulVote(ctx context.Context, reviewID string) error {
	votes := s.readVoteLedger(ctx)
	upvoted := s.readUpvoteSet(ctx)

	if _, ok := upvoted[reviewID]; ok {
		votes[reviewID]--
		delete(upvoted, reviewID)
	} else {
		votes[reviewID]++
		upvoted[reviewID] = struct{}{}
	}

	if err := s.writeVoteLedger(ctx, votes); err != nil {
		return err
	}
	if err := s.writeUpvoteSet(ctx, upvoted); err != nil {
		return err
	}
	notifyDataChanged(ctx, s.bus, providers.KeyReviewVotes)
	return nil
}

func (s *ContentService) readVoteLedger(ctx context.Context) map[string]int {
	data, err := s.store.Get(ctx, providers.KeyReviewVotes)
	if err != nil {
		if !errors.Is(err, providers.ErrKeyNotFound) {
			observability.LoggerFromContext(ctx).Warn().Err(err).Msg("failed to read vote ledger")
		}
		return map[string]int{}
	}
	var votes map[string]int
	if err := json.Unmarshal(data, &votes); err != nil || votes == nil {
		return map[string]int{}
	}
	return votes
}

func (s *ContentService) writeVoteLedger(ctx context.Context, votes map[string]int) error {
	data, err := json.Marshal(votes)
	if err != nil {
		return apperrors.NewInternalError("failed to encode vote ledger", err)
	}
	if err := s.store.Set(ctx, providers.KeyReviewVotes, data); err != nil {
		return apperrors.NewInternalError("failed to persist vote ledger", err)
	}
	return nil
}

func (s *ContentService) readUpvoteSet(ctx context.Context) map[string]struct{} {
	ids := readList[string](ctx, s.store, providers.KeyUserUpvotes)
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s *ContentService) writeUpvoteSet(ctx context.Context, set map[string]struct{}) error {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return writeList(ctx, s.store, providers.KeyUserUpvotes, ids)
}

// --- Questions & Answers ---

// ListQuestions returns questions for an organization, seed first then
// user-added. A seed question that has been answered locally appears only
// in its persisted (cloned) form.
func (s *ContentService) ListQuestions(ctx context.Context, entityID string) []entities.Question {
	persisted := readList[entities.Question](ctx, s.store, providers.QuestionsKey(entityID))
	persistedIDs := make(map[string]struct{}, len(persisted))
	for _, q := range persisted {
		persistedIDs[q.ID] = struct{}{}
	}

	var merged []entities.Question
	for _, q := range seed.Questions() {
		if q.EntityID != entityID {
			continue
		}
		if _, shadowed := persistedIDs[q.ID]; shadowed {
			continue
		}
		merged = append(merged, q)
	}
	return append(merged, persisted...)
}

// AddQuestion appends a new question with no answers yet
func (s *ContentService) AddQuestion(ctx context.Context, entityID, text string) error {
	if text == "" {
		return apperrors.NewValidationError("question text is required")
	}
	question := entities.Question{
		ID:        uuid.New().String(),
		EntityID:  entityID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
		Answers:   []entities.Answer{},
	}
	if err := appendToList(ctx, s.store, providers.QuestionsKey(entityID), question); err != nil {
		return err
	}
	notifyDataChanged(ctx, s.bus, providers.QuestionsKey(entityID))
	return nil
}

// AddAnswer appends an answer to a question. When the target is a seed
// question not yet present in the overlay, the seed record is cloned into
// the overlay with the new answer attached; the seed layer itself is
// never mutated.
func (s *ContentService) AddAnswer(ctx context.Context, entityID, questionID, text string, isVerified bool) error {
	if text == "" {
		return apperrors.NewValidationError("answer text is required")
	}

	answer := entities.Answer{
		ID:         uuid.New().String(),
		Text:       text,
		AuthorType: entities.AnswerAuthorPublic,
		IsVerified: isVerified,
		CreatedAt:  time.Now().UTC(),
	}
	if isVerified {
		answer.AuthorType = entities.AnswerAuthorEmployee
	}

	key := providers.QuestionsKey(entityID)
	persisted := readList[entities.Question](ctx, s.store, key)
	for i := range persisted {
		if persisted[i].ID == questionID {
			persisted[i].Answers = append(persisted[i].Answers, answer)
			if err := writeList(ctx, s.store, key, persisted); err != nil {
				return err
			}
			notifyDataChanged(ctx, s.bus, key)
			return nil
		}
	}

	// Copy-on-write: clone the seed question into the overlay.
	for _, q := range seed.Questions() {
		if q.ID == questionID && q.EntityID == entityID {
			clone := q.Clone()
			clone.Answers = append(clone.Answers, answer)
			persisted = append(persisted, clone)
			if err := writeList(ctx, s.store, key, persisted); err != nil {
				return err
			}
			notifyDataChanged(ctx, s.bus, key)
			return nil
		}
	}

	return apperrors.NewNotFoundError("question not found: " + questionID)
}

// --- Interview reports ---

// ListInterviews returns interview reports for an organization
func (s *ContentService) ListInterviews(ctx context.Context, entityID string) []entities.InterviewReport {
	var merged []entities.InterviewReport
	for _, i := range seed.Interviews() {
		if i.EntityID == entityID {
			merged = append(merged, i)
		}
	}
	return append(merged, readList[entities.InterviewReport](ctx, s.store, providers.InterviewsKey(entityID))...)
}

// AddInterview validates and appends an interview report
func (s *ContentService) AddInterview(ctx context.Context, entityID string, report *entities.InterviewReport) error {
	if report == nil {
		return apperrors.NewValidationError("interview report is required")
	}
	if report.Difficulty < 1 || report.Difficulty > 5 {
		return apperrors.NewValidationError(fmt.Sprintf("difficulty must be between 1 and 5, got %d", report.Difficulty))
	}
	report.EntityID = entityID
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}
	if err := appendToList(ctx, s.store, providers.InterviewsKey(entityID), *report); err != nil {
		return err
	}
	notifyDataChanged(ctx, s.bus, providers.InterviewsKey(entityID))
	return nil
}

// --- Salary submissions ---

// ListSalaries returns salary submissions for an organization
func (s *ContentService) ListSalaries(ctx context.Context, entityID string) []entities.SalarySubmission {
	var merged []entities.SalarySubmission
	for _, sub := range seed.Salaries() {
		if sub.EntityID == entityID {
			merged = append(merged, sub)
		}
	}
	return append(merged, readList[entities.SalarySubmission](ctx, s.store, providers.SalariesKey(entityID))...)
}

// AddSalary validates and appends a salary submission
func (s *ContentService) AddSalary(ctx context.Context, entityID string, submission *entities.SalarySubmission) error {
	if submission == nil {
		return apperrors.NewValidationError("salary submission is required")
	}
	if submission.CTC < 0 || submission.InHand < 0 {
		return apperrors.NewValidationError("compensation figures must not be negative")
	}
	submission.EntityID = entityID
	if submission.ID == "" {
		submission.ID = uuid.New().String()
	}
	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = time.Now().UTC()
	}
	if err := appendToList(ctx, s.store, providers.SalariesKey(entityID), *submission); err != nil {
		return err
	}
	notifyDataChanged(ctx, s.bus, providers.SalariesKey(entityID))
	return nil
}
