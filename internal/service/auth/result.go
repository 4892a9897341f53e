package auth

import "github.com/ip9202/jeju-tourlist-sub007/internal/domain"

// AuthResult is returned by Login, Register and Refresh operations.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	User         *domain.User
}
