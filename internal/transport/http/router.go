package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/movie-notes-api/internal/application/favorite"
	"github.com/movie-notes-api/internal/application/note"
	"github.com/movie-notes-api/internal/application/session"
	"github.com/movie-notes-api/internal/application/user"
	"github.com/movie-notes-api/internal/config"
	"github.com/movie-notes-api/internal/transport/http/handler"
	appmiddleware "github.com/movie-notes-api/internal/transport/http/middleware"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var observer appmiddleware.AuthObserver
	if deps.Metrics != nil {
		observer = deps.Metrics
	}
	authMw := appmiddleware.Auth(deps.Tokens, observer)

	userSvc := user.NewService(user.ServiceDeps{
		UserRepo: deps.UserRepo,
		Hasher:   deps.Hasher,
		Logger:   log,
	})
	sessionSvc := session.NewService(session.ServiceDeps{
		UserRepo:    deps.UserRepo,
		Hasher:      deps.Hasher,
		TokenIssuer: deps.Tokens,
		Logger:      log,
	})
	favoriteSvc := favorite.NewService(deps.FavoriteRepo)
	noteSvc := note.NewService(note.ServiceDeps{
		NoteRepo: deps.NoteRepo,
		Logger:   log,
	})

	healthH := handler.NewHealthHandler()
	userH := handler.NewUserHandler(userSvc, sessionSvc)
	favoriteH := handler.NewFavoriteHandler(favoriteSvc)
	noteH := handler.NewNoteHandler(noteSvc)

	// Public routes
	r.Get("/health-check/{action}", healthH.Ping)
	r.Post("/signup", userH.Signup)
	r.Post("/signin", userH.Signin)
	r.Get("/getAllUsers", userH.List)
	if deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics.Handler())
	}

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authMw)

		r.Post("/addToFavorites", favoriteH.Add)
		r.Get("/getFavorites", favoriteH.List)

		r.Post("/addNote", noteH.Add)
		r.Get("/getUserNotes", noteH.List)
		r.Delete("/deleteNote", noteH.Delete)
		r.Put("/updateNote", noteH.Update)
	})

	return r
}
