package answer

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
)

// Hand-rolled func-field mocks for the service's consumer interfaces.

type questionRepoMock struct {
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	GetByIDForUpdateFunc  func(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	SetAcceptedAnswerFunc func(ctx context.Context, id uuid.UUID, answerID *uuid.UUID) error
}

func (m *questionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *questionRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	return m.GetByIDForUpdateFunc(ctx, id)
}

func (m *questionRepoMock) SetAcceptedAnswer(ctx context.Context, id uuid.UUID, answerID *uuid.UUID) error {
	return m.SetAcceptedAnswerFunc(ctx, id, answerID)
}

type answerRepoMock struct {
	GetByIDFunc                  func(ctx context.Context, id uuid.UUID) (*domain.Answer, error)
	ListByQuestionFunc           func(ctx context.Context, questionID uuid.UUID) ([]*domain.Answer, error)
	CreateFunc                   func(ctx context.Context, a *domain.Answer) (*domain.Answer, error)
	SetAcceptedFunc              func(ctx context.Context, id uuid.UUID, accepted bool) error
	ClearAcceptedForQuestionFunc func(ctx context.Context, questionID uuid.UUID) (int, error)
	VoteFunc                     func(ctx context.Context, id uuid.UUID, vote domain.VoteType) (*domain.Answer, error)
	AdjustCommentCountFunc       func(ctx context.Context, id uuid.UUID, delta int) error
	DeleteFunc                   func(ctx context.Context, id uuid.UUID) error
}

func (m *answerRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *answerRepoMock) ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]*domain.Answer, error) {
	return m.ListByQuestionFunc(ctx, questionID)
}

func (m *answerRepoMock) Create(ctx context.Context, a *domain.Answer) (*domain.Answer, error) {
	return m.CreateFunc(ctx, a)
}

func (m *answerRepoMock) SetAccepted(ctx context.Context, id uuid.UUID, accepted bool) error {
	return m.SetAcceptedFunc(ctx, id, accepted)
}

func (m *answerRepoMock) ClearAcceptedForQuestion(ctx context.Context, questionID uuid.UUID) (int, error) {
	return m.ClearAcceptedForQuestionFunc(ctx, questionID)
}

func (m *answerRepoMock) Vote(ctx context.Context, id uuid.UUID, vote domain.VoteType) (*domain.Answer, error) {
	return m.VoteFunc(ctx, id, vote)
}

func (m *answerRepoMock) AdjustCommentCount(ctx context.Context, id uuid.UUID, delta int) error {
	return m.AdjustCommentCountFunc(ctx, id, delta)
}

func (m *answerRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

type commentRepoMock struct {
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByAnswerFunc func(ctx context.Context, answerID uuid.UUID) ([]*domain.Comment, error)
	CreateFunc       func(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
}

func (m *commentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *commentRepoMock) ListByAnswer(ctx context.Context, answerID uuid.UUID) ([]*domain.Comment, error) {
	return m.ListByAnswerFunc(ctx, answerID)
}

func (m *commentRepoMock) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	return m.CreateFunc(ctx, c)
}

func (m *commentRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

type userRepoMock struct {
	AddPointsFunc func(ctx context.Context, id uuid.UUID, amount int) error
}

func (m *userRepoMock) AddPoints(ctx context.Context, id uuid.UUID, amount int) error {
	return m.AddPointsFunc(ctx, id, amount)
}

type notificationRecorderMock struct {
	CreateFunc func(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

func (m *notificationRecorderMock) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	return n, nil
}

type badgeAwarderMock struct {
	RecalculateFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Badge, error)
}

func (m *badgeAwarderMock) Recalculate(ctx context.Context, userID uuid.UUID) ([]*domain.Badge, error) {
	if m.RecalculateFunc != nil {
		return m.RecalculateFunc(ctx, userID)
	}
	return nil, nil
}

// publisherMock records published notifications, concurrency-safe.
type publisherMock struct {
	mu        sync.Mutex
	published []*domain.Notification
}

func (m *publisherMock) Publish(userID uuid.UUID, n *domain.Notification) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published = append(m.published, n)
}

func (m *publisherMock) all() []*domain.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.Notification(nil), m.published...)
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc != nil {
		return m.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
