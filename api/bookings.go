package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mtereshin/skyfare/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	FlightID      int64  `json:"flight_id" binding:"required"`
	PassengerName string `json:"passenger_name" binding:"required"`
	Seats         int    `json:"seats" binding:"required,gte=1"`
}

type createBookingResponse struct {
	PNR        string  `json:"pnr"`
	FinalPrice float64 `json:"final_price"`
}

type bookingResponse struct {
	BookingID     string  `json:"booking_id"`
	FlightID      int64   `json:"flight_id"`
	PassengerName string  `json:"passenger_name"`
	SeatsBooked   int     `json:"seats_booked"`
	FinalPrice    float64 `json:"final_price"`
	Status        string  `json:"status"`
	PNR           string  `json:"pnr"`
	BookingTime   string  `json:"booking_time"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/bookings", h.create)
	router.GET("/bookings/:pnr", h.get)
	router.DELETE("/bookings/:pnr", h.cancel)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, codeValidationError, "flight_id, passenger_name and seats (>= 1) are required")
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		FlightID:      req.FlightID,
		PassengerName: req.PassengerName,
		Seats:         req.Seats,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, createBookingResponse{
		PNR:        created.PNR,
		FinalPrice: created.FinalPrice,
	})
}

func (h *BookingHandler) get(c *gin.Context) {
	b, err := h.service.GetBooking(c.Request.Context(), c.Param("pnr"))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookingResponse{
		BookingID:     b.ID,
		FlightID:      b.FlightID,
		PassengerName: b.PassengerName,
		SeatsBooked:   b.SeatsBooked,
		FinalPrice:    b.FinalPrice,
		Status:        string(b.Status),
		PNR:           b.PNR,
		BookingTime:   b.BookingTime.Format(time.RFC3339),
	})
}

func (h *BookingHandler) cancel(c *gin.Context) {
	pnr := c.Param("pnr")
	if err := h.service.CancelBooking(c.Request.Context(), pnr); err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking " + pnr + " cancelled"})
}
