package entities

import (
	"time"
)

// AnswerAuthorType distinguishes insider answers from public ones
type AnswerAuthorType string

const (
	AnswerAuthorEmployee AnswerAuthorType = "Employee"
	AnswerAuthorPublic   AnswerAuthorType = "Public"
)

// Answer is a single reply to a question. Append-only.
type Answer struct {
	ID         string           `json:"id"`
	Text       string           `json:"text"`
	AuthorType AnswerAuthorType `json:"author_type"`
	IsVerified bool             `json:"is_verified"`
	CreatedAt  time.Time        `json:"created_at"`
}

// Question belongs to one organization and holds an ordered list of answers
type Question struct {
	ID        string    `json:"id"`
	EntityID  string    `json:"entity_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Answers   []Answer  `json:"answers"`
}

// Clone returns a deep copy of the question. Seed questions are immutable,
// so answering one clones it into the persisted overlay first.
func (q *Question) Clone() Question {
	copied := *q
	copied.Answers = make([]Answer, len(q.Answers))
	copy(copied.Answers, q.Answers)
	return copied
}
