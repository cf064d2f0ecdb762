//go:build e2e

package e2e

import (
	"net/http"
	"testing"
	"time"

	resdto "buchungssystem/internal/handler/dto/response"
	"buchungssystem/internal/pkg/config"
	"buchungssystem/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type BookingFlowTestSuite struct {
	suite.Suite
	router     *gin.Engine
	cfg        config.Config
	userToken  string
	adminToken string
}

func TestBookingFlowSuite(t *testing.T) {
	suite.Run(t, new(BookingFlowTestSuite))
}

func (s *BookingFlowTestSuite) SetupTest() {
	s.router, s.cfg = setupE2EEnvironment(s.T())
	s.userToken = s.login(testUserPassword, "user")
	s.adminToken = s.login(testAdminPassword, "admin")
}

func (s *BookingFlowTestSuite) login(plaintext, expectedRole string) string {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login",
		map[string]any{"password": plaintext}, "")

	var response resdto.LoginResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Equal(expectedRole, response.Role)
	s.Require().NotEmpty(response.Token)
	return response.Token
}

// slot renders a civil timestamp on a future day in the booking zone.
func (s *BookingFlowTestSuite) slot(daysAhead, hour, minute int) string {
	loc := s.cfg.Booking.Location()
	now := time.Now().In(loc)
	t := time.Date(now.Year(), now.Month(), now.Day()+daysAhead, hour, minute, 0, 0, loc)
	return t.Format("2006-01-02T15:04:05")
}

func (s *BookingFlowTestSuite) createBody(room, resource string, daysAhead, startHour, endHour int) map[string]any {
	return map[string]any{
		"room":     room,
		"resource": resource,
		"start":    s.slot(daysAhead, startHour, 0),
		"end":      s.slot(daysAhead, endHour, 0),
	}
}

func (s *BookingFlowTestSuite) TestMetaIsPublic() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/meta", nil, "")

	var response resdto.RulesResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Len(response.Rooms, 4)
	s.Len(response.Resources, 2)
	s.Equal("08:00", response.BookingRules.MinTime)
	s.Equal(14, response.BookingRules.MaxDaysAhead)
}

func (s *BookingFlowTestSuite) TestAuthIsRequired() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings", nil, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Ungültige Sitzung")

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings",
		s.createBody("WOLF", "SAUNA", 1, 10, 11), "kaputtes-token")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Ungültige Sitzung")
}

func (s *BookingFlowTestSuite) TestWrongPassword() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login",
		map[string]any{"password": "falsch"}, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Falsches Passwort")
}

func (s *BookingFlowTestSuite) TestBookingLifecycle() {
	// User books the sauna tomorrow.
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings",
		s.createBody("WOLF", "SAUNA", 1, 10, 11), s.userToken)

	var created resdto.CreateBookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
	s.Equal("gebucht", created.Status)

	// A second sauna booking on the same day is refused, even from another
	// room.
	rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings",
		s.createBody("BIBER", "SAUNA", 1, 14, 15), s.userToken)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Pro Tag ist nur eine Buchung")

	// The grill on the same day is fine.
	rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings",
		s.createBody("FUCHS", "GRILL", 1, 14, 16), s.userToken)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

	// Everyone sees the full calendar.
	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings", nil, s.userToken)
	var listed []resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &listed)
	s.Len(listed, 2)
	s.Equal("Wolf", listed[0].Room)
	s.Equal("Sauna", listed[0].Resource)

	// Users cannot delete, admins can.
	deleteURL := "/api/bookings/" + created.ID.String()
	rec = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, deleteURL, nil, s.userToken)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Nur Admins dürfen löschen")

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, deleteURL, nil, s.adminToken)
	var deleted resdto.DeleteBookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &deleted)
	s.Equal("gelöscht", deleted.Status)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, deleteURL, nil, s.adminToken)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Buchung nicht gefunden")
}

func (s *BookingFlowTestSuite) TestValidationMessages() {
	// Outside the daily window.
	body := s.createBody("WOLF", "SAUNA", 2, 10, 11)
	body["start"] = s.slot(2, 7, 45)
	body["end"] = s.slot(2, 9, 0)
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", body, s.userToken)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Buchungen nur zwischen 08:00 und 22:00 erlaubt")

	// Too far ahead.
	rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings",
		s.createBody("WOLF", "SAUNA", 20, 10, 11), s.userToken)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Maximal 14 Tage im Voraus buchbar")

	// Sauna duration above the house maximum.
	rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings",
		s.createBody("WOLF", "SAUNA", 2, 10, 14), s.userToken)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Maximale Buchungsdauer: 120 Minuten")
}

func (s *BookingFlowTestSuite) TestAdminMayDoubleBook() {
	body := s.createBody("WOLF", "SAUNA", 3, 10, 11)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", body, s.adminToken)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", body, s.adminToken)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
}
