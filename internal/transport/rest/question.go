package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
	"github.com/ip9202/jeju-tourlist-sub007/internal/service/question"
	"github.com/ip9202/jeju-tourlist-sub007/pkg/ctxutil"
)

// questionService defines the minimal interface needed by QuestionHandler.
type questionService interface {
	Create(ctx context.Context, input question.CreateInput) (*domain.Question, error)
	Get(ctx context.Context, id uuid.UUID) (*question.Detail, error)
	List(ctx context.Context, input question.ListInput) ([]*domain.Question, int, error)
	Update(ctx context.Context, id uuid.UUID, input question.UpdateInput) (*domain.Question, error)
	Delete(ctx context.Context, id uuid.UUID, isAdmin bool) error
}

// roleResolver looks up the requester for role checks.
type roleResolver interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// QuestionHandler serves question REST endpoints.
type QuestionHandler struct {
	svc   questionService
	users roleResolver
	log   *slog.Logger
}

// NewQuestionHandler creates a QuestionHandler.
func NewQuestionHandler(svc questionService, users roleResolver, logger *slog.Logger) *QuestionHandler {
	return &QuestionHandler{svc: svc, users: users, log: logger.With("handler", "question")}
}

type createQuestionRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `json:"category"`
}

type updateQuestionRequest struct {
	Title    *string `json:"title"`
	Body     *string `json:"body"`
	Category *string `json:"category"`
}

type questionResponse struct {
	ID               string    `json:"id"`
	AuthorID         string    `json:"authorId"`
	Title            string    `json:"title"`
	Body             string    `json:"body"`
	Category         string    `json:"category"`
	AcceptedAnswerID *string   `json:"acceptedAnswerId,omitempty"`
	AnswerCount      int       `json:"answerCount"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type questionDetailResponse struct {
	questionResponse
	Answers []answerResponse `json:"answers"`
}

type questionListResponse struct {
	Items  []questionResponse `json:"items"`
	Total  int                `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

// Create handles POST /api/questions.
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), question.CreateInput{
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toQuestionResponse(created))
}

// Get handles GET /api/questions/{questionID}.
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "questionID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid question id")
		return
	}

	detail, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := questionDetailResponse{
		questionResponse: toQuestionResponse(detail.Question),
		Answers:          make([]answerResponse, 0, len(detail.Answers)),
	}
	for _, a := range detail.Answers {
		resp.Answers = append(resp.Answers, toAnswerResponse(a))
	}

	writeJSON(w, http.StatusOK, resp)
}

// List handles GET /api/questions.
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	input := question.ListInput{
		Category: r.URL.Query().Get("category"),
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		input.Limit, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		input.Offset, _ = strconv.Atoi(v)
	}

	questions, total, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := questionListResponse{
		Items:  make([]questionResponse, 0, len(questions)),
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	for _, q := range questions {
		resp.Items = append(resp.Items, toQuestionResponse(q))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Update handles PATCH /api/questions/{questionID}.
func (h *QuestionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "questionID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid question id")
		return
	}

	var req updateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), id, question.UpdateInput{
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuestionResponse(updated))
}

// Delete handles DELETE /api/questions/{questionID}. Admins may delete
// any question.
func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "questionID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid question id")
		return
	}

	if err := h.svc.Delete(r.Context(), id, h.isAdmin(r.Context())); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *QuestionHandler) isAdmin(ctx context.Context) bool {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false
	}
	u, err := h.users.GetByID(ctx, userID)
	if err != nil {
		return false
	}
	return u.Role == domain.UserRoleAdmin
}

func toQuestionResponse(q *domain.Question) questionResponse {
	resp := questionResponse{
		ID:          q.ID.String(),
		AuthorID:    q.AuthorID.String(),
		Title:       q.Title,
		Body:        q.Body,
		Category:    q.Category,
		AnswerCount: q.AnswerCount,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
	if q.AcceptedAnswerID != nil {
		s := q.AcceptedAnswerID.String()
		resp.AcceptedAnswerID = &s
	}
	return resp
}
