package handler

import (
	"log/slog"
	"net/http"

	"service_marketplace/internal/model"
	"service_marketplace/internal/service"
	"service_marketplace/internal/validation"

	"github.com/gin-gonic/gin"
)

// BookingHandler handles booking requests
type BookingHandler struct {
	service   service.BookingService
	validator *validation.Validator
	logger    *slog.Logger
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(s service.BookingService, v *validation.Validator, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{service: s, validator: v, logger: logger}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	user, err := getAuthUser(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	var req model.InsertBooking
	if err := bindJSON(c, h.validator, &req); err != nil {
		writeError(c, h.logger, err)
		return
	}

	booking, err := h.service.Create(c.Request.Context(), user, req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) GetCustomerBookings(c *gin.Context) {
	user, err := getAuthUser(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	bookings, err := h.service.CustomerBookings(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	respondBookings(c, bookings)
}

func (h *BookingHandler) GetWorkerBookings(c *gin.Context) {
	user, err := getAuthUser(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	bookings, err := h.service.WorkerBookings(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	respondBookings(c, bookings)
}

func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	user, err := getAuthUser(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	id, err := parseID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	var req model.UpdateBookingStatusRequest
	if err := bindJSON(c, h.validator, &req); err != nil {
		writeError(c, h.logger, err)
		return
	}

	booking, err := h.service.UpdateStatus(c.Request.Context(), user, id, req.Status)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func respondBookings(c *gin.Context, bookings []model.Booking) {
	if bookings == nil {
		bookings = []model.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// RegisterBookingRoutes registers booking routes, all behind a session.
// Only customer accounts may create bookings.
func (h *BookingHandler) RegisterBookingRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, customerMW gin.HandlerFunc) {
	bookingRoutes := rg.Group("/bookings")
	bookingRoutes.Use(authMW)
	{
		bookingRoutes.POST("", customerMW, h.CreateBooking)
		bookingRoutes.GET("/customer", h.GetCustomerBookings)
		bookingRoutes.GET("/worker", h.GetWorkerBookings)
		bookingRoutes.PATCH("/:id/status", h.UpdateBookingStatus) // Service layer checks the caller is a party
	}
}
