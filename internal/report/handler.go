package report

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/attendance-management/internal/attendance"
	"github.com/frahmantamala/attendance-management/internal/auth"
	"github.com/frahmantamala/attendance-management/internal/transport"
	"github.com/frahmantamala/attendance-management/pkg/logger"
)

type ServiceAPI interface {
	MonthlySummary(userID string) (DashboardStats, error)
	EmployeeDashboard(userID string) (*EmployeeDashboard, error)
	ManagerDashboard() (*ManagerDashboard, error)
	Export(from, to, userID string) ([]*attendance.WithUser, string, string, error)
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

// MySummary handles GET /attendance/my-summary
func (h *Handler) MySummary(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	summary, err := h.Service.MonthlySummary(user.ID)
	if err != nil {
		h.Logger.Error("MySummary: service error", "error", err, "user_id", user.ID)
		h.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.WriteJSON(w, http.StatusOK, summary)
}

// EmployeeDashboard handles GET /dashboard/employee
func (h *Handler) EmployeeDashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	dashboard, err := h.Service.EmployeeDashboard(user.ID)
	if err != nil {
		h.Logger.Error("EmployeeDashboard: service error", "error", err, "user_id", user.ID)
		h.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.WriteJSON(w, http.StatusOK, dashboard)
}

// ManagerDashboard handles GET /dashboard/manager
func (h *Handler) ManagerDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.Service.ManagerDashboard()
	if err != nil {
		h.Logger.Error("ManagerDashboard: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.WriteJSON(w, http.StatusOK, dashboard)
}

// Export handles GET /attendance/export
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	records, from, to, err := h.Service.Export(q.Get("from"), q.Get("to"), q.Get("employeeId"))
	if err != nil {
		h.Logger.Error("Export: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=attendance_report_%s_%s.csv", from, to))

	if err := WriteCSV(w, records); err != nil {
		h.Logger.Error("Export: failed to write csv", "error", err)
	}
}
