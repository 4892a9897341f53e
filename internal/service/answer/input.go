package answer

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
)

// CreateInput holds parameters for posting an answer.
type CreateInput struct {
	QuestionID uuid.UUID
	Content    string
}

// Validate validates the create input.
func (i CreateInput) Validate(maxLen int) error {
	var errs []domain.FieldError

	if i.QuestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "questionId", Message: "required"})
	}

	content := strings.TrimSpace(i.Content)
	if content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	} else if utf8.RuneCountInString(content) > maxLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AdoptInput holds parameters for adopting or un-adopting an answer.
type AdoptInput struct {
	QuestionID uuid.UUID
	AnswerID   uuid.UUID
}

// Validate validates the adopt input.
func (i AdoptInput) Validate() error {
	var errs []domain.FieldError

	if i.QuestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "questionId", Message: "required"})
	}
	if i.AnswerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "answerId", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// VoteInput holds parameters for voting on an answer.
type VoteInput struct {
	AnswerID uuid.UUID
	Vote     domain.VoteType
}

// Validate validates the vote input.
func (i VoteInput) Validate() error {
	var errs []domain.FieldError

	if i.AnswerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "answerId", Message: "required"})
	}
	if !i.Vote.IsValid() {
		errs = append(errs, domain.FieldError{Field: "vote", Message: "must be like or dislike"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CommentInput holds parameters for commenting on an answer.
type CommentInput struct {
	AnswerID uuid.UUID
	Content  string
}

// Validate validates the comment input.
func (i CommentInput) Validate(maxLen int) error {
	var errs []domain.FieldError

	if i.AnswerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "answerId", Message: "required"})
	}

	content := strings.TrimSpace(i.Content)
	if content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	} else if utf8.RuneCountInString(content) > maxLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
