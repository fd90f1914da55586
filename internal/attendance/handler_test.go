package attendance_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/attendance-management/internal/attendance"
	"github.com/frahmantamala/attendance-management/internal/auth"
)

// Stub service for handler tests
type stubAttendanceService struct {
	record      *attendance.Attendance
	joined      []*attendance.WithUser
	checkInErr  error
	checkOutErr error
	todayErr    error
}

func (s *stubAttendanceService) CheckIn(userID string) (*attendance.Attendance, error) {
	return s.record, s.checkInErr
}

func (s *stubAttendanceService) CheckOut(userID string) (*attendance.Attendance, error) {
	return s.record, s.checkOutErr
}

func (s *stubAttendanceService) Today(userID string) (*attendance.Attendance, error) {
	return s.record, s.todayErr
}

func (s *stubAttendanceService) History(userID string) ([]*attendance.Attendance, error) {
	if s.record == nil {
		return nil, nil
	}
	return []*attendance.Attendance{s.record}, nil
}

func (s *stubAttendanceService) All() ([]*attendance.WithUser, error) {
	return s.joined, nil
}

func (s *stubAttendanceService) TodayStatus() ([]*attendance.WithUser, error) {
	return s.joined, nil
}

var _ = Describe("AttendanceHandler", func() {
	var (
		handler *attendance.Handler
		stub    *stubAttendanceService
	)

	sessionUser := &auth.User{
		ID:         "user-1",
		Email:      "andi@example.com",
		Name:       "Andi Wijaya",
		Role:       auth.RoleEmployee,
		EmployeeID: "EMP1001",
		Department: "Engineering",
	}

	authedRequest := func(method, target string) *http.Request {
		req := httptest.NewRequest(method, target, nil)
		return req.WithContext(auth.ContextWithUser(req.Context(), sessionUser))
	}

	errorMessage := func(w *httptest.ResponseRecorder) string {
		var body map[string]interface{}
		Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
		return body["message"].(string)
	}

	BeforeEach(func() {
		stub = &stubAttendanceService{}
		handler = attendance.NewHandler(stub)
	})

	Describe("CheckIn", func() {
		It("returns 201 with the created record", func() {
			checkIn := time.Date(2026, time.March, 9, 8, 30, 0, 0, time.UTC)
			stub.record = &attendance.Attendance{
				ID:          "att-1",
				UserID:      "user-1",
				Date:        "2026-03-09",
				CheckInTime: &checkIn,
				Status:      attendance.StatusPresent,
			}

			w := httptest.NewRecorder()
			handler.CheckIn(w, authedRequest(http.MethodPost, "/attendance/checkin"))

			Expect(w.Code).To(Equal(http.StatusCreated))

			var got attendance.Attendance
			Expect(json.NewDecoder(w.Body).Decode(&got)).To(Succeed())
			Expect(got.ID).To(Equal("att-1"))
			Expect(got.Status).To(Equal(attendance.StatusPresent))
		})

		It("returns 400 with the duplicate message on a repeat check-in", func() {
			stub.checkInErr = attendance.ErrAlreadyCheckedIn

			w := httptest.NewRecorder()
			handler.CheckIn(w, authedRequest(http.MethodPost, "/attendance/checkin"))

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(errorMessage(w)).To(Equal("Already checked in today"))
		})

		It("returns 401 without a session user", func() {
			w := httptest.NewRecorder()
			handler.CheckIn(w, httptest.NewRequest(http.MethodPost, "/attendance/checkin", nil))

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(errorMessage(w)).To(Equal("Not authenticated"))
		})
	})

	Describe("CheckOut", func() {
		It("returns 400 when not checked in yet", func() {
			stub.checkOutErr = attendance.ErrNotCheckedIn

			w := httptest.NewRecorder()
			handler.CheckOut(w, authedRequest(http.MethodPost, "/attendance/checkout"))

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(errorMessage(w)).To(Equal("Not checked in yet"))
		})

		It("returns 400 when already checked out", func() {
			stub.checkOutErr = attendance.ErrAlreadyCheckedOut

			w := httptest.NewRecorder()
			handler.CheckOut(w, authedRequest(http.MethodPost, "/attendance/checkout"))

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(errorMessage(w)).To(Equal("Already checked out today"))
		})

		It("returns 200 with the completed record", func() {
			checkIn := time.Date(2026, time.March, 9, 8, 30, 0, 0, time.UTC)
			checkOut := time.Date(2026, time.March, 9, 17, 30, 0, 0, time.UTC)
			stub.record = &attendance.Attendance{
				ID:           "att-1",
				UserID:       "user-1",
				Date:         "2026-03-09",
				CheckInTime:  &checkIn,
				CheckOutTime: &checkOut,
				Status:       attendance.StatusPresent,
				TotalHours:   9,
			}

			w := httptest.NewRecorder()
			handler.CheckOut(w, authedRequest(http.MethodPost, "/attendance/checkout"))

			Expect(w.Code).To(Equal(http.StatusOK))

			var got attendance.Attendance
			Expect(json.NewDecoder(w.Body).Decode(&got)).To(Succeed())
			Expect(got.TotalHours).To(Equal(9))
		})
	})

	Describe("Today", func() {
		It("returns a JSON null when there is no record yet", func() {
			w := httptest.NewRecorder()
			handler.Today(w, authedRequest(http.MethodGet, "/attendance/today"))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON("null"))
		})
	})
})
