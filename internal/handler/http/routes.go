package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/v1/users/register", h.register)
		r.Post("/api/v1/users/login", h.login)
		r.Post("/api/v1/users/refresh-token", h.refresh)
	})

	// channel profiles are public but viewer-aware: a valid token enables
	// the is_subscribed flag, its absence does not reject the request
	router.Group(func(r chi.Router) {
		r.Use(h.optionalAuth)
		r.Get("/api/v1/users/c/{username}", h.channelProfile)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/v1/users/logout", h.logout)
		r.Post("/api/v1/users/change-password", h.changePassword)
		r.Get("/api/v1/users/current-user", h.currentUser)
		r.Patch("/api/v1/users/update-account", h.updateAccount)
		r.Patch("/api/v1/users/avatar", h.updateAvatar)
		r.Patch("/api/v1/users/cover-image", h.updateCover)

		r.Get("/api/v1/users/history", h.watchHistory)
		r.Post("/api/v1/users/history/{videoID}", h.recordWatch)

		r.Post("/api/v1/subscriptions/c/{username}", h.subscribe)
		r.Delete("/api/v1/subscriptions/c/{username}", h.unsubscribe)

		r.Post("/api/v1/tweets", h.createTweet)
		r.Get("/api/v1/tweets", h.listTweets)

		r.Post("/api/v1/playlists", h.createPlaylist)
		r.Get("/api/v1/playlists/{playlistID}", h.getPlaylist)
		r.Post("/api/v1/playlists/{playlistID}/videos/{videoID}", h.addVideoToPlaylist)

		r.Post("/api/v1/likes/{kind}/{targetID}", h.toggleLike)
		r.Get("/api/v1/likes/{kind}/{targetID}", h.countLikes)
	})

	return router
}
