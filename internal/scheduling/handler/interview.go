package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"hireline/internal/scheduling/service"
	apperrors "hireline/pkg/errors"
	httputil "hireline/pkg/http"
	"hireline/pkg/logger"
	"hireline/pkg/model"
)

type InterviewHandler struct {
	service service.SchedulerService
	log     *logger.Logger
}

func NewInterviewHandler(service service.SchedulerService, log *logger.Logger) *InterviewHandler {
	return &InterviewHandler{
		service: service,
		log:     log,
	}
}

func (h *InterviewHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/schedule", h.Schedule)
	router.GET("/api/v1/schedule/available", h.AvailableSlots)
	router.GET("/api/v1/schedule/list", h.ListScheduled)
	router.POST("/api/v1/schedule/cancel/:id", h.Cancel)
}

type ListResponse struct {
	Interviews []*model.Interview `json:"interviews"`
	Count      int                `json:"count"`
}

type SlotsResponse struct {
	Date           string       `json:"date"`
	AvailableSlots []model.Slot `json:"available_slots"`
}

type CancelResponse struct {
	Success   bool             `json:"success"`
	Message   string           `json:"message"`
	Interview *model.Interview `json:"interview"`
}

func (h *InterviewHandler) Schedule(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Schedule", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	result, err := h.service.Schedule(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Schedule", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	status := http.StatusCreated
	if !result.Success {
		status = http.StatusConflict
	}
	if err := httputil.WriteJSON(w, status, result); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Schedule", "operation", "WriteJSON", "error", err)
	}
}

func (h *InterviewHandler) AvailableSlots(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	date := query.Get("date")
	interviewType := query.Get("type")

	slots, err := h.service.AvailableSlots(r.Context(), date, interviewType)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "AvailableSlots", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, SlotsResponse{
		Date:           date,
		AvailableSlots: slots,
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "AvailableSlots", "operation", "WriteJSON", "error", err)
	}
}

func (h *InterviewHandler) ListScheduled(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	date := r.URL.Query().Get("date")

	interviews, err := h.service.ListScheduled(r.Context(), date)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListScheduled", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, ListResponse{
		Interviews: interviews,
		Count:      len(interviews),
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "ListScheduled", "operation", "WriteJSON", "error", err)
	}
}

func (h *InterviewHandler) Cancel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	idStr := ps.ByName("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Interview ID must be an integer: "+idStr)); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Cancel", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	var req model.CancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Cancel", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	interview, err := h.service.Cancel(r.Context(), id, &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Cancel", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, CancelResponse{
		Success:   true,
		Message:   "Interview " + idStr + " cancelled successfully",
		Interview: interview,
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Cancel", "operation", "WriteJSON", "error", err)
	}
}
