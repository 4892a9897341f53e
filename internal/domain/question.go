package domain

import (
	"time"

	"github.com/google/uuid"
)

// Question represents a travel question posted to the community.
// AcceptedAnswerID, when set, always references an answer that belongs to
// this question; the adoption service maintains that invariant under a row
// lock on the question.
type Question struct {
	ID               uuid.UUID
	AuthorID         uuid.UUID
	Title            string
	Body             string
	Category         string
	AcceptedAnswerID *uuid.UUID
	AnswerCount      int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasAcceptedAnswer returns true if some answer is currently adopted.
func (q *Question) HasAcceptedAnswer() bool {
	return q.AcceptedAnswerID != nil
}

// IsAuthor returns true if the given user authored the question.
func (q *Question) IsAuthor(userID uuid.UUID) bool {
	return q.AuthorID == userID
}

// Answer represents an answer to a question. IsAccepted is denormalized from
// Question.AcceptedAnswerID; at most one answer per question carries it.
type Answer struct {
	ID           uuid.UUID
	QuestionID   uuid.UUID
	AuthorID     uuid.UUID
	Content      string
	IsAccepted   bool
	LikeCount    int
	DislikeCount int
	CommentCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BelongsTo returns true if the answer belongs to the given question.
func (a *Answer) BelongsTo(questionID uuid.UUID) bool {
	return a.QuestionID == questionID
}

// VoteType identifies the direction of an answer vote.
type VoteType string

const (
	VoteLike    VoteType = "like"
	VoteDislike VoteType = "dislike"
)

func (v VoteType) String() string { return string(v) }

func (v VoteType) IsValid() bool {
	return v == VoteLike || v == VoteDislike
}

// Comment represents a short reply under an answer.
type Comment struct {
	ID        uuid.UUID
	AnswerID  uuid.UUID
	AuthorID  uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
