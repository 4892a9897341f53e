package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
	"github.com/ip9202/jeju-tourlist-sub007/internal/service/user"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*user.Profile, error)
	GetMe(ctx context.Context) (*user.Profile, error)
	UpdateProfile(ctx context.Context, input user.UpdateInput) (*domain.User, error)
}

// UserHandler serves profile REST endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type updateProfileRequest struct {
	Nickname  *string `json:"nickname"`
	AvatarURL *string `json:"avatarUrl"`
}

type profileResponse struct {
	User           userResponse    `json:"user"`
	TotalAnswers   int             `json:"totalAnswers"`
	AdoptedAnswers int             `json:"adoptedAnswers"`
	AdoptRate      float64         `json:"adoptRate"`
	Badges         []badgeResponse `json:"badges"`
}

type badgeResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// GetMe handles GET /api/users/me.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.GetMe(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(profile))
}

// GetProfile handles GET /api/users/{userID}.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "userID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	profile, err := h.svc.GetProfile(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(profile))
}

// UpdateMe handles PATCH /api/users/me.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateProfile(r.Context(), user.UpdateInput{
		Nickname:  req.Nickname,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(updated))
}

func toProfileResponse(p *user.Profile) profileResponse {
	resp := profileResponse{
		User:           toUserResponse(p.User),
		TotalAnswers:   p.Stats.TotalAnswers,
		AdoptedAnswers: p.Stats.AdoptedAnswers,
		AdoptRate:      p.AdoptRate,
		Badges:         make([]badgeResponse, 0, len(p.Badges)),
	}
	for _, b := range p.Badges {
		resp.Badges = append(resp.Badges, toBadgeResponse(b))
	}
	return resp
}

func toBadgeResponse(b *domain.Badge) badgeResponse {
	return badgeResponse{
		ID:   b.ID.String(),
		Code: b.Code,
		Name: b.Name,
	}
}
