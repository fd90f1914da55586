package attendance

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/attendance-management/internal/auth"
	"github.com/frahmantamala/attendance-management/internal/transport"
	"github.com/frahmantamala/attendance-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CheckIn(userID string) (*Attendance, error)
	CheckOut(userID string) (*Attendance, error)
	Today(userID string) (*Attendance, error)
	History(userID string) ([]*Attendance, error)
	All() ([]*WithUser, error)
	TodayStatus() ([]*WithUser, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.Logger.Error("CheckIn: user not found in context")
		h.WriteError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	record, err := h.Service.CheckIn(user.ID)
	if err != nil {
		h.Logger.Error("CheckIn: service error", "error", err, "user_id", user.ID)

		switch err {
		case ErrAlreadyCheckedIn:
			h.WriteError(w, http.StatusBadRequest, "Already checked in today")
		default:
			h.WriteError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.WriteJSON(w, http.StatusCreated, record)
}

func (h *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.Logger.Error("CheckOut: user not found in context")
		h.WriteError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	record, err := h.Service.CheckOut(user.ID)
	if err != nil {
		h.Logger.Error("CheckOut: service error", "error", err, "user_id", user.ID)

		switch err {
		case ErrNotCheckedIn:
			h.WriteError(w, http.StatusBadRequest, "Not checked in yet")
		case ErrAlreadyCheckedOut:
			h.WriteError(w, http.StatusBadRequest, "Already checked out today")
		default:
			h.WriteError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, record)
}

func (h *Handler) Today(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	record, err := h.Service.Today(user.ID)
	if err != nil {
		h.Logger.Error("Today: service error", "error", err, "user_id", user.ID)
		h.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// record is nil when the user has no record yet; the client expects null.
	h.WriteJSON(w, http.StatusOK, record)
}

func (h *Handler) MyHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	records, err := h.Service.History(user.ID)
	if err != nil {
		h.Logger.Error("MyHistory: service error", "error", err, "user_id", user.ID)
		h.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.WriteJSON(w, http.StatusOK, records)
}

// All returns every attendance record with its owner. Manager only.
func (h *Handler) All(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.All()
	if err != nil {
		h.Logger.Error("All: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.WriteJSON(w, http.StatusOK, records)
}

// ByEmployee returns one employee's history. Manager only.
func (h *Handler) ByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		h.WriteError(w, http.StatusBadRequest, "employee id is required")
		return
	}

	records, err := h.Service.History(employeeID)
	if err != nil {
		h.Logger.Error("ByEmployee: service error", "error", err, "employee_id", employeeID)
		h.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.WriteJSON(w, http.StatusOK, records)
}

// TodayStatus returns today's records joined with their owners. Manager only.
func (h *Handler) TodayStatus(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.TodayStatus()
	if err != nil {
		h.Logger.Error("TodayStatus: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.WriteJSON(w, http.StatusOK, records)
}
