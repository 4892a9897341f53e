package auth

import (
	"context"
	"fmt"
	"strings"
)

// CheckEmail reports whether the given email is already registered.
// Backs the signup form's availability check.
func (s *Service) CheckEmail(ctx context.Context, input CheckEmailInput) (bool, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return false, err
	}

	exists, err := s.users.EmailExists(ctx, input.Email)
	if err != nil {
		return false, fmt.Errorf("auth.CheckEmail: %w", err)
	}
	return exists, nil
}
