package answer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
	"github.com/ip9202/jeju-tourlist-sub007/pkg/ctxutil"
)

// AdoptResult is returned by a successful adoption.
type AdoptResult struct {
	Answer        *domain.Answer
	Notification  *domain.Notification
	AwardedBadges []*domain.Badge

	// badgeNotifications are committed alongside the adoption notification
	// and published after the transaction, one per newly earned badge.
	badgeNotifications []*domain.Notification
}

// Adopt marks an answer as the accepted one for its question. Only the
// question author may adopt, and never their own answer. Adopting while
// another answer is already accepted replaces the acceptance; points
// already granted to the previous author are kept.
//
// The whole state change runs in one transaction under a row lock on the
// question, so concurrent adoptions of the same question serialize and the
// question never ends up with two accepted answers. The notification is
// pushed to the author's live connections only after the commit.
func (s *Service) Adopt(ctx context.Context, input AdoptInput) (*AdoptResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var result AdoptResult

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		question, err := s.questions.GetByIDForUpdate(txCtx, input.QuestionID)
		if err != nil {
			return fmt.Errorf("get question: %w", err)
		}
		if !question.IsAuthor(userID) {
			return domain.ErrForbidden
		}

		answer, err := s.answers.GetByID(txCtx, input.AnswerID)
		if err != nil {
			return fmt.Errorf("get answer: %w", err)
		}
		if !answer.BelongsTo(question.ID) {
			return fmt.Errorf("answer %s does not belong to question %s: %w",
				answer.ID, question.ID, domain.ErrNotFound)
		}
		if answer.AuthorID == userID {
			return domain.NewValidationError("answerId", "cannot adopt your own answer")
		}

		// Re-adopting the already-accepted answer is a no-op success:
		// no points, no notification, no fan-out.
		if question.AcceptedAnswerID != nil && *question.AcceptedAnswerID == answer.ID {
			answer.IsAccepted = true
			result = AdoptResult{Answer: answer}
			return nil
		}

		// Replacing a previous acceptance: clear the old flag but keep the
		// previous author's points. Points only ever go up.
		if question.AcceptedAnswerID != nil {
			if _, err := s.answers.ClearAcceptedForQuestion(txCtx, question.ID); err != nil {
				return fmt.Errorf("clear previous acceptance: %w", err)
			}
		}

		if err := s.answers.SetAccepted(txCtx, answer.ID, true); err != nil {
			return fmt.Errorf("mark answer accepted: %w", err)
		}
		if err := s.questions.SetAcceptedAnswer(txCtx, question.ID, &answer.ID); err != nil {
			return fmt.Errorf("set accepted answer: %w", err)
		}

		if err := s.users.AddPoints(txCtx, answer.AuthorID, s.cfg.AdoptPoints); err != nil {
			return fmt.Errorf("award points: %w", err)
		}

		notification, err := s.notifications.Create(txCtx, &domain.Notification{
			ID:        uuid.New(),
			UserID:    answer.AuthorID,
			Message:   fmt.Sprintf("회원님의 답변이 채택되었습니다! +%dP 적립", s.cfg.AdoptPoints),
			Points:    s.cfg.AdoptPoints,
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("record notification: %w", err)
		}

		awarded, err := s.badges.Recalculate(txCtx, answer.AuthorID)
		if err != nil {
			return fmt.Errorf("recalculate badges: %w", err)
		}

		var badgeNotifs []*domain.Notification
		for _, b := range awarded {
			bn, err := s.notifications.Create(txCtx, &domain.Notification{
				ID:        uuid.New(),
				UserID:    answer.AuthorID,
				Message:   fmt.Sprintf("축하합니다! '%s' 배지를 획득했습니다", b.Name),
				CreatedAt: time.Now().UTC(),
			})
			if err != nil {
				return fmt.Errorf("record badge notification: %w", err)
			}
			badgeNotifs = append(badgeNotifs, bn)
		}

		answer.IsAccepted = true
		result = AdoptResult{
			Answer:             answer,
			Notification:       notification,
			AwardedBadges:      awarded,
			badgeNotifications: badgeNotifs,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("answer.Adopt: %w", err)
	}

	// Fan out only after the commit so a rollback never produces a ghost
	// notification. A no-op re-adoption carries no notification.
	if result.Notification != nil {
		s.publisher.Publish(result.Notification.UserID, result.Notification)
	}
	for _, bn := range result.badgeNotifications {
		s.publisher.Publish(bn.UserID, bn)
	}

	points := 0
	if result.Notification != nil {
		points = result.Notification.Points
	}
	s.log.InfoContext(ctx, "answer adopted",
		slog.String("question_id", input.QuestionID.String()),
		slog.String("answer_id", input.AnswerID.String()),
		slog.String("answer_author_id", result.Answer.AuthorID.String()),
		slog.Int("points", points),
		slog.Int("new_badges", len(result.AwardedBadges)))

	return &result, nil
}
