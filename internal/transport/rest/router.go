package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ip9202/jeju-tourlist-sub007/internal/transport/middleware"
)

// RouterDeps bundles everything the router mounts.
type RouterDeps struct {
	Auth          *AuthHandler
	Question      *QuestionHandler
	Answer        *AnswerHandler
	Notification  *NotificationHandler
	User          *UserHandler
	Health        *HealthHandler
	Stream        http.HandlerFunc
	GlobalMW      []middleware.Middleware
	AuthMW        middleware.Middleware
	RequireUserMW middleware.Middleware
}

// NewRouter assembles the HTTP routing table. Global middleware wraps
// everything; AuthMW resolves an optional bearer token into the request
// context; RequireUserMW rejects anonymous requests on protected routes.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	for _, mw := range deps.GlobalMW {
		r.Use(mw)
	}

	r.Get("/health", deps.Health.Health)
	r.Get("/health/live", deps.Health.Live)
	r.Get("/health/ready", deps.Health.Ready)

	r.Route("/api", func(api chi.Router) {
		api.Use(deps.AuthMW)

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/register", deps.Auth.Register)
			auth.Post("/login", deps.Auth.LoginWithPassword)
			auth.Post("/login/oauth", deps.Auth.LoginOAuth)
			auth.Post("/refresh", deps.Auth.Refresh)
			auth.Post("/logout", deps.Auth.Logout)
			auth.Get("/check-email", deps.Auth.CheckEmail)
		})

		api.Route("/questions", func(q chi.Router) {
			q.Get("/", deps.Question.List)
			q.Get("/{questionID}", deps.Question.Get)
			q.Get("/{questionID}/answers", deps.Answer.ListByQuestion)

			q.Group(func(q chi.Router) {
				q.Use(deps.RequireUserMW)
				q.Post("/", deps.Question.Create)
				q.Patch("/{questionID}", deps.Question.Update)
				q.Delete("/{questionID}", deps.Question.Delete)
				q.Post("/{questionID}/answers", deps.Answer.Create)
			})
		})

		api.Route("/answers", func(a chi.Router) {
			a.Get("/{answerID}/comments", deps.Answer.ListComments)

			a.Group(func(a chi.Router) {
				a.Use(deps.RequireUserMW)
				a.Post("/{answerID}/adopt", deps.Answer.Adopt)
				a.Delete("/{answerID}/adopt", deps.Answer.Unadopt)
				a.Post("/{answerID}/votes", deps.Answer.Vote)
				a.Post("/{answerID}/comments", deps.Answer.AddComment)
				a.Delete("/{answerID}", deps.Answer.Delete)
			})
		})

		api.With(deps.RequireUserMW).Delete("/comments/{commentID}", deps.Answer.DeleteComment)

		api.Route("/notifications", func(n chi.Router) {
			// The stream authenticates itself (header or token query param)
			// because browsers cannot set headers on a WebSocket dial.
			n.Get("/stream", deps.Stream)

			n.Group(func(n chi.Router) {
				n.Use(deps.RequireUserMW)
				n.Get("/", deps.Notification.List)
				n.Get("/unread-count", deps.Notification.UnreadCount)
				n.Post("/read-all", deps.Notification.MarkAllRead)
				n.Post("/{notificationID}/read", deps.Notification.MarkRead)
				n.Delete("/", deps.Notification.DeleteAll)
			})
		})

		api.Route("/users", func(u chi.Router) {
			u.Get("/{userID}", deps.User.GetProfile)

			u.Group(func(u chi.Router) {
				u.Use(deps.RequireUserMW)
				u.Get("/me", deps.User.GetMe)
				u.Patch("/me", deps.User.UpdateMe)
			})
		})
	})

	return r
}
