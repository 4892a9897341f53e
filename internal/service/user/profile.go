package user

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
	"github.com/ip9202/jeju-tourlist-sub007/pkg/ctxutil"
)

// Profile is a member's public profile: identity, adoption stats, badges.
type Profile struct {
	User      *domain.User
	Stats     domain.AnswerStats
	AdoptRate float64
	Badges    []*domain.Badge
}

// GetProfile returns the profile of any member by ID.
func (s *Service) GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	stats, err := s.users.GetAnswerStats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	badges, err := s.badges.ListForUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return &Profile{
		User:      u,
		Stats:     stats,
		AdoptRate: domain.AdoptRate(stats.AdoptedAnswers, stats.TotalAnswers),
		Badges:    badges,
	}, nil
}

// GetMe returns the caller's own profile.
func (s *Service) GetMe(ctx context.Context) (*Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.GetProfile(ctx, userID)
}

// UpdateInput carries the editable profile fields. Nil means unchanged.
type UpdateInput struct {
	Nickname  *string
	AvatarURL *string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Nickname != nil {
		nickname := strings.TrimSpace(*i.Nickname)
		if nickname == "" {
			errs = append(errs, domain.FieldError{Field: "nickname", Message: "required"})
		} else if utf8.RuneCountInString(nickname) > 30 {
			errs = append(errs, domain.FieldError{Field: "nickname", Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProfile edits the caller's own profile.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateInput) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.Nickname != nil {
		trimmed := strings.TrimSpace(*input.Nickname)
		input.Nickname = &trimmed
	}

	updated, err := s.users.Update(ctx, userID, input.Nickname, input.AvatarURL)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}
	return updated, nil
}
