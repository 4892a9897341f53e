package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
	"github.com/ip9202/jeju-tourlist-sub007/internal/service/answer"
)

// answerService defines the minimal interface needed by AnswerHandler.
type answerService interface {
	Create(ctx context.Context, input answer.CreateInput) (*domain.Answer, error)
	ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]*domain.Answer, error)
	Adopt(ctx context.Context, input answer.AdoptInput) (*answer.AdoptResult, error)
	Unadopt(ctx context.Context, input answer.AdoptInput) error
	Vote(ctx context.Context, input answer.VoteInput) (*domain.Answer, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddComment(ctx context.Context, input answer.CommentInput) (*domain.Comment, error)
	ListComments(ctx context.Context, answerID uuid.UUID) ([]*domain.Comment, error)
	DeleteComment(ctx context.Context, id uuid.UUID) error
}

// answerResolver loads an answer so the unadopt route can find its question.
type answerResolver interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error)
}

// AnswerHandler serves answer REST endpoints.
type AnswerHandler struct {
	svc     answerService
	answers answerResolver
	log     *slog.Logger
}

// NewAnswerHandler creates an AnswerHandler.
func NewAnswerHandler(svc answerService, answers answerResolver, logger *slog.Logger) *AnswerHandler {
	return &AnswerHandler{svc: svc, answers: answers, log: logger.With("handler", "answer")}
}

type createAnswerRequest struct {
	Content string `json:"content"`
}

type adoptRequest struct {
	QuestionID string `json:"questionId"`
}

type voteRequest struct {
	Type string `json:"type"`
}

type commentRequest struct {
	Content string `json:"content"`
}

type answerResponse struct {
	ID           string    `json:"id"`
	QuestionID   string    `json:"questionId"`
	AuthorID     string    `json:"authorId"`
	Content      string    `json:"content"`
	IsAccepted   bool      `json:"isAccepted"`
	LikeCount    int       `json:"likeCount"`
	DislikeCount int       `json:"dislikeCount"`
	CommentCount int       `json:"commentCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type adoptResponse struct {
	Answer        answerResponse  `json:"answer"`
	AwardedBadges []badgeResponse `json:"awardedBadges,omitempty"`
}

type commentResponse struct {
	ID        string    `json:"id"`
	AnswerID  string    `json:"answerId"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Create handles POST /api/questions/{questionID}/answers.
func (h *AnswerHandler) Create(w http.ResponseWriter, r *http.Request) {
	questionID, ok := pathUUID(r, "questionID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid question id")
		return
	}

	var req createAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), answer.CreateInput{
		QuestionID: questionID,
		Content:    req.Content,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAnswerResponse(created))
}

// ListByQuestion handles GET /api/questions/{questionID}/answers.
func (h *AnswerHandler) ListByQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, ok := pathUUID(r, "questionID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid question id")
		return
	}

	answers, err := h.svc.ListByQuestion(r.Context(), questionID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]answerResponse, 0, len(answers))
	for _, a := range answers {
		resp = append(resp, toAnswerResponse(a))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Adopt handles POST /api/answers/{answerID}/adopt.
func (h *AnswerHandler) Adopt(w http.ResponseWriter, r *http.Request) {
	answerID, ok := pathUUID(r, "answerID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid answer id")
		return
	}

	var req adoptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid question id")
		return
	}

	result, err := h.svc.Adopt(r.Context(), answer.AdoptInput{
		QuestionID: questionID,
		AnswerID:   answerID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := adoptResponse{Answer: toAnswerResponse(result.Answer)}
	for _, b := range result.AwardedBadges {
		resp.AwardedBadges = append(resp.AwardedBadges, toBadgeResponse(b))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Unadopt handles DELETE /api/answers/{answerID}/adopt. The route carries
// no body; the question is resolved from the answer itself.
func (h *AnswerHandler) Unadopt(w http.ResponseWriter, r *http.Request) {
	answerID, ok := pathUUID(r, "answerID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid answer id")
		return
	}

	a, err := h.answers.GetByID(r.Context(), answerID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	err = h.svc.Unadopt(r.Context(), answer.AdoptInput{
		QuestionID: a.QuestionID,
		AnswerID:   answerID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "unadopted"})
}

// Vote handles POST /api/answers/{answerID}/votes.
func (h *AnswerHandler) Vote(w http.ResponseWriter, r *http.Request) {
	answerID, ok := pathUUID(r, "answerID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid answer id")
		return
	}

	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Vote(r.Context(), answer.VoteInput{
		AnswerID: answerID,
		Vote:     domain.VoteType(req.Type),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAnswerResponse(updated))
}

// Delete handles DELETE /api/answers/{answerID}.
func (h *AnswerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	answerID, ok := pathUUID(r, "answerID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid answer id")
		return
	}

	if err := h.svc.Delete(r.Context(), answerID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// AddComment handles POST /api/answers/{answerID}/comments.
func (h *AnswerHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	answerID, ok := pathUUID(r, "answerID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid answer id")
		return
	}

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.AddComment(r.Context(), answer.CommentInput{
		AnswerID: answerID,
		Content:  req.Content,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCommentResponse(created))
}

// ListComments handles GET /api/answers/{answerID}/comments.
func (h *AnswerHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	answerID, ok := pathUUID(r, "answerID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid answer id")
		return
	}

	comments, err := h.svc.ListComments(r.Context(), answerID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]commentResponse, 0, len(comments))
	for _, c := range comments {
		resp = append(resp, toCommentResponse(c))
	}

	writeJSON(w, http.StatusOK, resp)
}

// DeleteComment handles DELETE /api/comments/{commentID}.
func (h *AnswerHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, ok := pathUUID(r, "commentID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	if err := h.svc.DeleteComment(r.Context(), commentID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func toAnswerResponse(a *domain.Answer) answerResponse {
	return answerResponse{
		ID:           a.ID.String(),
		QuestionID:   a.QuestionID.String(),
		AuthorID:     a.AuthorID.String(),
		Content:      a.Content,
		IsAccepted:   a.IsAccepted,
		LikeCount:    a.LikeCount,
		DislikeCount: a.DislikeCount,
		CommentCount: a.CommentCount,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID.String(),
		AnswerID:  c.AnswerID.String(),
		AuthorID:  c.AuthorID.String(),
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}
