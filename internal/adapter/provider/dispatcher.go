// Package provider routes OAuth authorization-code verification to the
// configured upstream (Kakao, Naver or Google). Only providers with full
// credentials get a verifier; the rest are rejected at dispatch time.
package provider

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ip9202/jeju-tourlist-sub007/internal/adapter/provider/google"
	"github.com/ip9202/jeju-tourlist-sub007/internal/adapter/provider/kakao"
	"github.com/ip9202/jeju-tourlist-sub007/internal/adapter/provider/naver"
	"github.com/ip9202/jeju-tourlist-sub007/internal/auth"
	"github.com/ip9202/jeju-tourlist-sub007/internal/config"
	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
)

// codeVerifier is what each concrete provider implements.
type codeVerifier interface {
	VerifyCode(ctx context.Context, provider, code string) (*auth.OAuthIdentity, error)
}

// Dispatcher selects the verifier matching the requested provider.
type Dispatcher struct {
	verifiers map[string]codeVerifier
}

// NewDispatcher builds verifiers for every provider with credentials in cfg.
func NewDispatcher(cfg config.AuthConfig, logger *slog.Logger) *Dispatcher {
	verifiers := make(map[string]codeVerifier)

	if cfg.KakaoClientID != "" && cfg.KakaoClientSecret != "" {
		verifiers["kakao"] = kakao.NewVerifier(cfg.KakaoClientID, cfg.KakaoClientSecret, cfg.KakaoRedirectURI, logger)
	}
	if cfg.NaverClientID != "" && cfg.NaverClientSecret != "" {
		verifiers["naver"] = naver.NewVerifier(cfg.NaverClientID, cfg.NaverClientSecret, cfg.NaverRedirectURI, logger)
	}
	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" {
		verifiers["google"] = google.NewVerifier(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURI, logger)
	}

	return &Dispatcher{verifiers: verifiers}
}

// VerifyCode delegates to the provider's verifier.
func (d *Dispatcher) VerifyCode(ctx context.Context, provider, code string) (*auth.OAuthIdentity, error) {
	v, ok := d.verifiers[provider]
	if !ok {
		return nil, fmt.Errorf("provider %q is not configured: %w",
			provider, domain.NewValidationError("provider", "unsupported oauth provider"))
	}
	return v.VerifyCode(ctx, provider, code)
}
