package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shiftwatch/incident-backend-go/internal/domain/invitation"
	"github.com/shiftwatch/incident-backend-go/internal/handler/http/middleware"
	"github.com/shiftwatch/incident-backend-go/internal/handler/http/response"
)

type InvitationHandler interface {
	Issue(w http.ResponseWriter, r *http.Request)
	GetByToken(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
	Decline(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
}

type InvitationHandlerImpl struct {
	invitationService invitation.InvitationService
}

func NewInvitationHandler(invitationService invitation.InvitationService) InvitationHandler {
	return &InvitationHandlerImpl{
		invitationService: invitationService,
	}
}

// Issue implements InvitationHandler.
func (h *InvitationHandlerImpl) Issue(w http.ResponseWriter, r *http.Request) {
	var issueReq invitation.IssueRequest

	if err := json.NewDecoder(r.Body).Decode(&issueReq); err != nil {
		slog.Error("Issue invitation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	issueReq.IssuedByUserID = middleware.UserIDFromContext(r.Context())

	if err := issueReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.invitationService.Issue(r.Context(), issueReq)
	if err != nil {
		slog.Error("Issue invitation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Invitation created", invitation.ToDetailResponse(created))
}

// GetByToken implements InvitationHandler. Public: the invitee holds only
// the token.
func (h *InvitationHandlerImpl) GetByToken(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	result, err := h.invitationService.GetByToken(r.Context(), token)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Accept implements InvitationHandler. Public: acceptance is how the
// invitee gets an account in the first place.
func (h *InvitationHandlerImpl) Accept(w http.ResponseWriter, r *http.Request) {
	var acceptReq invitation.AcceptRequest

	if err := json.NewDecoder(r.Body).Decode(&acceptReq); err != nil {
		slog.Error("Accept invitation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	acceptReq.Token = chi.URLParam(r, "token")

	if err := acceptReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.invitationService.Accept(r.Context(), acceptReq)
	if err != nil {
		slog.Error("Accept invitation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Invitation accepted", result)
}

// Decline implements InvitationHandler.
func (h *InvitationHandlerImpl) Decline(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	if err := h.invitationService.Decline(r.Context(), token); err != nil {
		slog.Error("Decline invitation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invitation declined", nil)
}

// ListPending implements InvitationHandler.
func (h *InvitationHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	result, err := h.invitationService.ListPending(r.Context())
	if err != nil {
		slog.Error("List pending invitations service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
