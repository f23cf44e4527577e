package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withBodyLimit)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/signup", h.signup)
		r.Post("/login", h.login)
	})

	// chat and account routes require a bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/user-details", h.userDetails)
		r.Post("/update-logout-time", h.updateLogoutTime)

		r.Post("/save-chat", h.saveChat)
		r.Get("/get-previous-chats", h.getPreviousChats)
		r.Get("/get-chat-history", h.getChatHistory)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
