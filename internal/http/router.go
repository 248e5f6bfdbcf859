package router

import (
	"net/http"
	"task-manager-api/internal/http/handlers"
)

func New(handler *handlers.TaskHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", handlers.Root)
	mux.HandleFunc("GET /health", handlers.Health)
	mux.HandleFunc("GET /openapi.json", handlers.OpenAPI)
	mux.HandleFunc("GET /docs", handlers.Docs)
	mux.HandleFunc("GET /redoc", handlers.Redoc)

	// collection routes answer with and without the trailing slash
	for _, path := range []string{"/tasks", "/tasks/{$}"} {
		mux.HandleFunc("POST "+path, handler.Create)
		mux.HandleFunc("GET "+path, handler.List)
	}

	mux.HandleFunc("GET /tasks/{id}", handler.Get)
	mux.HandleFunc("PATCH /tasks/{id}", handler.Update)
	mux.HandleFunc("DELETE /tasks/{id}", handler.Delete)

	return mux
}
