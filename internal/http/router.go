package router

import (
	"net/http"

	"taskboard/internal/http/handlers"
)

func New(handler *handlers.TaskHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /tasks", handler.List)
	mux.HandleFunc("GET /status", handler.Status)
	mux.HandleFunc("GET /events", handler.Events)

	mux.HandleFunc("POST /tasks", handler.Create)
	mux.HandleFunc("POST /tasks/{id}/process", handler.Process)
	mux.HandleFunc("POST /tasks/sort", handler.Sort)
	mux.HandleFunc("POST /tasks/process-all", handler.ProcessAll)
	mux.HandleFunc("POST /tasks/clear", handler.Clear)
	mux.HandleFunc("POST /tasks/samples", handler.LoadSamples)

	return mux
}
