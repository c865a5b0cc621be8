package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shiftwatch/incident-backend-go/internal/domain/report"
	"github.com/shiftwatch/incident-backend-go/internal/handler/http/middleware"
	"github.com/shiftwatch/incident-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	ListByEvent(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
	}
}

// Submit implements ReportHandler.
func (h *ReportHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var submitReq report.SubmitRequest

	if err := json.NewDecoder(r.Body).Decode(&submitReq); err != nil {
		slog.Error("Submit report decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	submitReq.SubmittedByUserID = middleware.UserIDFromContext(r.Context())

	if err := submitReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.Submit(r.Context(), submitReq)
	if err != nil {
		slog.Error("Submit report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Report submitted", result)
}

// ListByEvent implements ReportHandler.
func (h *ReportHandlerImpl) ListByEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	requesterID := middleware.UserIDFromContext(r.Context())

	reports, err := h.reportService.ListByEvent(r.Context(), eventID, requesterID)
	if err != nil {
		slog.Error("List event reports service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, reports)
}

// ListMine implements ReportHandler.
func (h *ReportHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	reports, err := h.reportService.ListMine(r.Context(), userID)
	if err != nil {
		slog.Error("List own reports service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, reports)
}
