package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shiftwatch/incident-backend-go/internal/domain/retention"
	"github.com/shiftwatch/incident-backend-go/internal/handler/http/middleware"
	"github.com/shiftwatch/incident-backend-go/internal/handler/http/response"
)

type RetentionHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type RetentionHandlerImpl struct {
	policyService retention.PolicyService
}

func NewRetentionHandler(policyService retention.PolicyService) RetentionHandler {
	return &RetentionHandlerImpl{
		policyService: policyService,
	}
}

// Get implements RetentionHandler.
func (h *RetentionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	policy, err := h.policyService.Get(r.Context())
	if err != nil {
		slog.Error("Get retention policy service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, retention.ToResponse(policy))
}

// Update implements RetentionHandler.
func (h *RetentionHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq retention.UpdateRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update retention policy decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.UpdatedByUserID = middleware.UserIDFromContext(r.Context())

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	policy, err := h.policyService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update retention policy service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Retention settings updated", retention.ToResponse(policy))
}
