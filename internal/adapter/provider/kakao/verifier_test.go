package kakao

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVerifier(t *testing.T, tokenHandler, userinfoHandler http.HandlerFunc) *Verifier {
	t.Helper()

	tokenSrv := httptest.NewServer(tokenHandler)
	userSrv := httptest.NewServer(userinfoHandler)
	t.Cleanup(tokenSrv.Close)
	t.Cleanup(userSrv.Close)

	origToken, origUserinfo := tokenURL, userinfoURL
	tokenURL, userinfoURL = tokenSrv.URL, userSrv.URL
	t.Cleanup(func() {
		tokenURL, userinfoURL = origToken, origUserinfo
	})

	logger := slog.New(slog.DiscardHandler)
	return NewVerifier("client-id", "client-secret", "http://localhost/callback", logger)
}

func TestVerifier_VerifyCode_Success(t *testing.T) {
	v := newTestVerifier(t,
		func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "authorization_code", r.Form.Get("grant_type"))
			assert.Equal(t, "good-code", r.Form.Get("code"))
			json.NewEncoder(w).Encode(map[string]any{"access_token": "kakao-token"})
		},
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer kakao-token", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(map[string]any{
				"id": 1234567,
				"kakao_account": map[string]any{
					"email": "traveler@example.com",
					"profile": map[string]any{
						"nickname":          "제주사랑",
						"profile_image_url": "https://img.example.com/p.jpg",
					},
				},
			})
		},
	)

	identity, err := v.VerifyCode(context.Background(), "kakao", "good-code")
	require.NoError(t, err)

	assert.Equal(t, "traveler@example.com", identity.Email)
	assert.Equal(t, "1234567", identity.ProviderID)
	require.NotNil(t, identity.Name)
	assert.Equal(t, "제주사랑", *identity.Name)
	require.NotNil(t, identity.AvatarURL)
	assert.Equal(t, "https://img.example.com/p.jpg", *identity.AvatarURL)
}

func TestVerifier_VerifyCode_InvalidCode(t *testing.T) {
	v := newTestVerifier(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid_grant"})
		},
		func(w http.ResponseWriter, r *http.Request) {
			t.Error("userinfo endpoint should not be called")
		},
	)

	_, err := v.VerifyCode(context.Background(), "kakao", "bad-code")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid or expired code")
}

func TestVerifier_VerifyCode_MissingEmail(t *testing.T) {
	v := newTestVerifier(t,
		func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"access_token": "kakao-token"})
		},
		func(w http.ResponseWriter, r *http.Request) {
			// Email scope not granted: kakao_account.email absent.
			json.NewEncoder(w).Encode(map[string]any{"id": 1234567})
		},
	)

	_, err := v.VerifyCode(context.Background(), "kakao", "good-code")
	require.Error(t, err)
}
