package question

import (
	"strings"
	"unicode/utf8"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
)

// CreateInput holds parameters for posting a question.
type CreateInput struct {
	Title    string
	Body     string
	Category string
}

// Validate validates the create input against the configured length limits.
func (i CreateInput) Validate(maxTitle, maxBody int) error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if utf8.RuneCountInString(title) > maxTitle {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	body := strings.TrimSpace(i.Body)
	if body == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	} else if utf8.RuneCountInString(body) > maxBody {
		errs = append(errs, domain.FieldError{Field: "body", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for editing a question. Nil fields are left
// unchanged.
type UpdateInput struct {
	Title    *string
	Body     *string
	Category *string
}

// Validate validates the update input.
func (i UpdateInput) Validate(maxTitle, maxBody int) error {
	var errs []domain.FieldError

	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "cannot be empty"})
		} else if utf8.RuneCountInString(title) > maxTitle {
			errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
		}
	}

	if i.Body != nil {
		body := strings.TrimSpace(*i.Body)
		if body == "" {
			errs = append(errs, domain.FieldError{Field: "body", Message: "cannot be empty"})
		} else if utf8.RuneCountInString(body) > maxBody {
			errs = append(errs, domain.FieldError{Field: "body", Message: "too long"})
		}
	}

	if i.Title == nil && i.Body == nil && i.Category == nil {
		errs = append(errs, domain.FieldError{Field: "update", Message: "no fields to update"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds pagination and filter parameters for browsing questions.
type ListInput struct {
	Category string
	Limit    int
	Offset   int
}

// Normalize clamps pagination to the configured bounds.
func (i *ListInput) Normalize(defaultLimit, maxLimit int) {
	if i.Limit <= 0 {
		i.Limit = defaultLimit
	}
	if i.Limit > maxLimit {
		i.Limit = maxLimit
	}
	if i.Offset < 0 {
		i.Offset = 0
	}
}
