package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"taskboard/internal/domain"
	"taskboard/internal/http/dto"
	"taskboard/internal/service"
)

type TaskService interface {
	AddTask(title, description string, priority domain.Priority) error
	ProcessTask(task domain.Task) error
	SortTasksByPriority() error
	ProcessAllTasks() error
	ClearAllTasks() error
	LoadSampleTasks() error
}

// TaskReader is the read side of the store the handler renders from.
type TaskReader interface {
	Tasks() []domain.Task
	Status() string
	SubscribeTasks(fn func([]domain.Task)) (unsubscribe func())
	SubscribeStatus(fn func(string)) (unsubscribe func())
}

type TaskHandler struct {
	taskService TaskService
	reader      TaskReader
}

func New(taskService TaskService, reader TaskReader) *TaskHandler {
	return &TaskHandler{taskService: taskService, reader: reader}
}

// POST /tasks
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())

		return
	}

	// priority is optional on the wire, defaulted to Medium
	priority := domain.PriorityMedium
	if req.Priority != nil {
		priority = domain.Priority(*req.Priority)
	}

	if err := h.taskService.AddTask(req.Title, req.Description, priority); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, service.ErrInvalidInput.Error())
		case errors.Is(err, service.ErrInvalidPriority):
			writeError(w, http.StatusBadRequest, service.ErrInvalidPriority.Error())
		case errors.Is(err, service.ErrServiceClosed):
			writeError(w, http.StatusServiceUnavailable, service.ErrServiceClosed.Error())
		default:
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// POST /tasks/{id}/process
func (h *TaskHandler) Process(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid task id")

		return
	}

	task, ok := findTask(h.reader.Tasks(), id)
	if !ok {
		writeError(w, http.StatusNotFound, "task not found")

		return
	}

	h.launch(w, h.taskService.ProcessTask(task))
}

// POST /tasks/sort
func (h *TaskHandler) Sort(w http.ResponseWriter, r *http.Request) {
	h.launch(w, h.taskService.SortTasksByPriority())
}

// POST /tasks/process-all
func (h *TaskHandler) ProcessAll(w http.ResponseWriter, r *http.Request) {
	h.launch(w, h.taskService.ProcessAllTasks())
}

// POST /tasks/clear
func (h *TaskHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.launch(w, h.taskService.ClearAllTasks())
}

// POST /tasks/samples
func (h *TaskHandler) LoadSamples(w http.ResponseWriter, r *http.Request) {
	h.launch(w, h.taskService.LoadSampleTasks())
}

// GET /tasks
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, taskResponses(h.reader.Tasks()))
}

// GET /status
func (h *TaskHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.StatusResponse{Status: h.reader.Status()})
}

// launch maps the outcome of starting an async operation to a response.
func (h *TaskHandler) launch(w http.ResponseWriter, err error) {
	if err != nil {
		if errors.Is(err, service.ErrServiceClosed) {
			writeError(w, http.StatusServiceUnavailable, service.ErrServiceClosed.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func findTask(tasks []domain.Task, id int64) (domain.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Task{}, false
}

func taskResponses(tasks []domain.Task) []dto.TaskResponse {
	out := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, dto.TaskResponse{
			ID:           t.ID,
			Title:        t.Title,
			Description:  t.Description,
			Priority:     int(t.Priority),
			PriorityName: t.Priority.Name(),
		})
	}
	return out
}
