// Package naver exchanges Naver OAuth authorization codes for user identity.
package naver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ip9202/jeju-tourlist-sub007/internal/auth"
)

var (
	// Made variables for testing purposes
	tokenURL    = "https://nid.naver.com/oauth2.0/token"
	userinfoURL = "https://openapi.naver.com/v1/nid/me"
)

// Verifier exchanges Naver OAuth authorization codes for user identity.
type Verifier struct {
	clientID     string
	clientSecret string
	redirectURI  string
	httpClient   *http.Client
	log          *slog.Logger
}

// NewVerifier creates a Naver OAuth verifier.
func NewVerifier(clientID, clientSecret, redirectURI string, logger *slog.Logger) *Verifier {
	return &Verifier{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		log:          logger.With("adapter", "naver_oauth"),
	}
}

type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	TokenType        string `json:"token_type"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// userinfoResponse represents the response from Naver's nid/me endpoint.
// Naver wraps the profile in a resultcode/response envelope.
type userinfoResponse struct {
	ResultCode string `json:"resultcode"`
	Message    string `json:"message"`
	Response   struct {
		ID           string `json:"id"`
		Email        string `json:"email"`
		Nickname     string `json:"nickname"`
		ProfileImage string `json:"profile_image"`
	} `json:"response"`
}

// VerifyCode exchanges an authorization code for user identity.
// The provider parameter is ignored (always "naver"), but kept for interface compatibility.
func (v *Verifier) VerifyCode(ctx context.Context, provider, code string) (*auth.OAuthIdentity, error) {
	accessToken, err := v.exchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	userinfo, err := v.fetchUserinfo(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	identity := &auth.OAuthIdentity{
		Email:      userinfo.Response.Email,
		ProviderID: userinfo.Response.ID,
	}
	if nick := userinfo.Response.Nickname; nick != "" {
		identity.Name = &nick
	}
	if img := userinfo.Response.ProfileImage; img != "" {
		identity.AvatarURL = &img
	}

	v.log.DebugContext(ctx, "naver oauth success", slog.String("provider_id", identity.ProviderID))

	return identity, nil
}

func (v *Verifier) exchangeCode(ctx context.Context, code string) (string, error) {
	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("code", code)
	data.Set("client_id", v.clientID)
	data.Set("client_secret", v.clientSecret)
	data.Set("redirect_uri", v.redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		v.log.ErrorContext(ctx, "naver oauth token exchange failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("oauth: naver unavailable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("oauth: failed to read token response")
	}

	// Naver reports token errors inside a 200 body.
	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		v.log.ErrorContext(ctx, "naver oauth token exchange failed", slog.String("error", "invalid json"))
		return "", fmt.Errorf("oauth: invalid token response")
	}
	if tokenResp.Error != "" {
		v.log.ErrorContext(ctx, "naver oauth token exchange failed",
			slog.String("error", tokenResp.Error),
			slog.String("description", tokenResp.ErrorDescription))
		return "", fmt.Errorf("oauth: invalid or expired code")
	}
	if resp.StatusCode != http.StatusOK || tokenResp.AccessToken == "" {
		v.log.ErrorContext(ctx, "naver oauth token exchange failed", slog.Int("status", resp.StatusCode))
		return "", fmt.Errorf("oauth: naver unavailable")
	}

	return tokenResp.AccessToken, nil
}

func (v *Verifier) fetchUserinfo(ctx context.Context, accessToken string) (*userinfoResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userinfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		v.log.ErrorContext(ctx, "naver oauth userinfo failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("oauth: failed to fetch user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.log.ErrorContext(ctx, "naver oauth userinfo failed", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("oauth: failed to fetch user info")
	}

	var userinfo userinfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&userinfo); err != nil {
		return nil, fmt.Errorf("oauth: invalid userinfo response")
	}

	if userinfo.ResultCode != "00" || userinfo.Response.ID == "" || userinfo.Response.Email == "" {
		v.log.ErrorContext(ctx, "naver oauth userinfo failed",
			slog.String("resultcode", userinfo.ResultCode),
			slog.String("error", "missing required fields"))
		return nil, fmt.Errorf("oauth: invalid userinfo response")
	}

	return &userinfo, nil
}
