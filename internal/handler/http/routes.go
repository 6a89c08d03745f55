package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/minhng-dev/taskblog/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/v1/auth/register", h.register)
		r.Post("/v1/auth/login", h.login)
	})

	// routes behind JWT authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/v1/todos", func(r chi.Router) {
			r.Post("/", h.createTodo)
			r.Get("/", h.getAllTodos)
			r.Get("/{id}", h.getTodoByID)
			r.Put("/{id}", h.updateTodo)
			r.Delete("/{id}", h.deleteTodo)
		})

		r.Route("/v1/posts", func(r chi.Router) {
			r.Post("/", h.createPost)
			r.Get("/", h.getAllPosts)
			r.Get("/user/{userId}/count", h.countPostsByUser)
			r.Get("/{id}", h.getPostByID)
			r.Put("/{id}", h.updatePost)
			r.Delete("/{id}", h.deletePost)
		})

		r.Route("/v1/profile", func(r chi.Router) {
			r.Use(h.withRole(models.RoleAdmin, models.RoleUser))

			r.Get("/", h.getProfile)
			r.Put("/", h.updateProfile)
		})
	})

	return router
}
