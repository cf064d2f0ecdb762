package api

import (
	"errors"
	"net/http"
	"time"

	"buchungssystem/internal/domain/booking"
	reqdto "buchungssystem/internal/handler/dto/request"
	resdto "buchungssystem/internal/handler/dto/response"
	"buchungssystem/internal/handler/httperr"
	"buchungssystem/internal/handler/middleware"
	"buchungssystem/internal/pkg/errs"
	"buchungssystem/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
	ruleQueries    usecase.RuleQueries
	loc            *time.Location
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase, ruleQueries usecase.RuleQueries, loc *time.Location) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
		ruleQueries:    ruleQueries,
		loc:            loc,
	}
}

// @Summary Create booking
// @Description Reserve a time slot on a shared resource
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking proposal"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	role, ok := middleware.GetRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("role missing from context"), "Internal server error", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Ungültige Eingabedaten", nil)
		return
	}

	proposal, err := req.ToProposal(h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Ungültige Eingabedaten", nil)
		return
	}

	id, err := h.bookingUseCase.Create(c.Request.Context(), proposal, role)
	if err != nil {
		abortWithRejection(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{
		Status: "gebucht",
		ID:     id,
	})
}

// @Summary List bookings
// @Description List all bookings; any authenticated caller may read the full calendar
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.bookingUseCase.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookings(bookings))
}

// @Summary Delete booking
// @Description Remove a booking; admin only
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.DeleteBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	role, ok := middleware.GetRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("role missing from context"), "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Ungültige Eingabedaten", nil)
		return
	}

	if err := h.bookingUseCase.Delete(c.Request.Context(), id, role); err != nil {
		abortWithRejection(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.DeleteBookingResponse{Status: "gelöscht"})
}

// @Summary Booking metadata
// @Description Closed enum sets and numeric rule constants for client-side pre-validation
// @Tags bookings
// @Produce json
// @Success 200 {object} resdto.RulesResponse
// @Router /bookings/meta [get]
func (h *BookingHandler) Meta(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromRuleSnapshot(h.ruleQueries.Snapshot()))
}

// abortWithRejection maps a rejection to its transport class; anything that
// is not a rejection is an infrastructure failure.
func abortWithRejection(c *gin.Context, err error) {
	var rej *booking.Rejection
	if !errors.As(err, &rej) {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	status := http.StatusBadRequest
	switch rej.Class() {
	case booking.ClassConflict:
		status = http.StatusConflict
	case booking.ClassForbidden:
		status = http.StatusForbidden
	case booking.ClassNotFound:
		status = http.StatusNotFound
	}

	httperr.AbortWithError(c, status, err, rej.Message, nil)
}
