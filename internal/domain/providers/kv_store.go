package providers

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when a key has no stored value
var ErrKeyNotFound = errors.New("key not found")

// KVStore is the persistence layer: a namespaced key-value store holding
// one JSON document per key. It is the single shared mutable resource and
// may be mutated externally at any time, so callers must re-read on every
// change notification rather than caching merged state.
type KVStore interface {
	// Get retrieves the raw value for a key. Returns ErrKeyNotFound when
	// the key has never been written.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores the raw value for a key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Storage key layout. One list per (content-type, entity) pair, one list
// per organization kind, singletons for the user session and ledgers.
const (
	KeyCustomCompanies = "honestwork:custom_companies"
	KeyCustomColleges  = "honestwork:custom_colleges"
	KeyCustomSchools   = "honestwork:custom_schools"
	KeyCustomGovOrgs   = "honestwork:custom_gov_orgs"
	KeyCustomMentors   = "honestwork:custom_mentors"

	KeyUserSession  = "honestwork:user_session"
	KeyChatSessions = "honestwork:chat_sessions"
	KeyChatMessages = "honestwork:chat_messages"
	KeyReviewVotes  = "honestwork:review_votes"
	KeyUserUpvotes  = "honestwork:user_upvotes"
)

// ReviewsKey returns the storage key for an organization's reviews
func ReviewsKey(entityID string) string {
	return "honestwork:reviews:" + entityID
}

// QuestionsKey returns the storage key for an organization's questions
func QuestionsKey(entityID string) string {
	return "honestwork:questions:" + entityID
}

// InterviewsKey returns the storage key for an organization's interview reports
func InterviewsKey(entityID string) string {
	return "honestwork:interviews:" + entityID
}

// SalariesKey returns the storage key for an organization's salary submissions
func SalariesKey(entityID string) string {
	return "honestwork:salaries:" + entityID
}
