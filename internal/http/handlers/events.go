package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"taskboard/internal/domain"
	"taskboard/internal/http/dto"
)

type event struct {
	name string
	data any
}

// GET /events
//
// Streams every task-list and status publish as Server-Sent Events. The
// subscription replays the current values first, so a client always starts
// from a full snapshot.
func (h *TaskHandler) Events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")

		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	// store callbacks run on the publisher's goroutine; hand events to the
	// writer loop through a buffered channel and drop on overflow rather
	// than ever blocking a publish
	events := make(chan event, 64)
	send := func(ev event) {
		select {
		case events <- ev:
		default:
		}
	}

	unsubTasks := h.reader.SubscribeTasks(func(tasks []domain.Task) {
		send(event{name: "tasks", data: taskResponses(tasks)})
	})
	defer unsubTasks()

	unsubStatus := h.reader.SubscribeStatus(func(status string) {
		send(event{name: "status", data: dto.StatusResponse{Status: status}})
	})
	defer unsubStatus()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-events:
			payload, err := json.Marshal(ev.data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.name, payload)
			flusher.Flush()
		}
	}
}
