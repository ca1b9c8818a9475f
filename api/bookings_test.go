package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mtereshin/skyfare/internal/domain"
	"github.com/mtereshin/skyfare/internal/service/booking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) CreateBooking(ctx context.Context, input booking.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) GetBooking(ctx context.Context, pnr string) (*domain.Booking, error) {
	args := m.Called(ctx, pnr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) CancelBooking(ctx context.Context, pnr string) error {
	args := m.Called(ctx, pnr)
	return args.Error(0)
}

func postBookingContext(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/bookings", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestBookingHandler_create(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := postBookingContext(t, `{"flight_id": 4, "passenger_name": "Ada Lovelace", "seats": 2}`)

	created := &domain.Booking{
		ID: "b-1", FlightID: 4, PassengerName: "Ada Lovelace", SeatsBooked: 2,
		FinalPrice: 240.00, Status: domain.BookingStatusConfirmed, PNR: "AB12CD",
	}
	mockService.On("CreateBooking", c.Request.Context(), booking.CreateBookingInput{
		FlightID: 4, PassengerName: "Ada Lovelace", Seats: 2,
	}).Return(created, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"pnr":"AB12CD"`)
	assert.Contains(t, w.Body.String(), `"final_price":240`)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_InvalidBody(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	bodies := []string{
		`not json`,
		`{}`,
		`{"flight_id": 4, "seats": 1}`,
		`{"flight_id": 4, "passenger_name": "Ada", "seats": 0}`,
		`{"flight_id": 4, "passenger_name": "Ada", "seats": -1}`,
	}
	for _, body := range bodies {
		c, w := postBookingContext(t, body)
		handler.create(c)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Contains(t, w.Body.String(), codeValidationError, body)
	}
	mockService.AssertNotCalled(t, "CreateBooking")
}

func TestBookingHandler_create_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"payment declined", domain.ErrPaymentDeclined, http.StatusBadRequest, codePaymentFailed},
		{"flight not found", domain.ErrFlightNotFound, http.StatusNotFound, codeNotFound},
		{"insufficient seats", domain.ErrInsufficientSeats, http.StatusBadRequest, codeInsufficientSeats},
		{"conflict", domain.ErrConflict, http.StatusConflict, codeConflict},
		{"internal", assert.AnError, http.StatusInternalServerError, codeInternalError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockBookingUseCase{}
			handler := NewBookingHandler(mockService)

			c, w := postBookingContext(t, `{"flight_id": 4, "passenger_name": "Ada", "seats": 1}`)
			mockService.On("CreateBooking", c.Request.Context(), mock.Anything).Return(nil, tc.err)

			handler.create(c)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantCode)
		})
	}
}

func TestBookingHandler_get(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "pnr", Value: "AB12CD"}}
	c.Request = httptest.NewRequest("GET", "/bookings/AB12CD", nil)

	b := &domain.Booking{
		ID: "b-1", FlightID: 4, PassengerName: "Ada", SeatsBooked: 2, FinalPrice: 240,
		Status: domain.BookingStatusConfirmed, PNR: "AB12CD",
		BookingTime: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	mockService.On("GetBooking", c.Request.Context(), "AB12CD").Return(b, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"CONFIRMED"`)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_get_NotFound(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "pnr", Value: "NOPE99"}}
	c.Request = httptest.NewRequest("GET", "/bookings/NOPE99", nil)

	mockService.On("GetBooking", c.Request.Context(), "NOPE99").Return(nil, domain.ErrBookingNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), codeNotFound)
}

func TestBookingHandler_cancel(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "pnr", Value: "AB12CD"}}
	c.Request = httptest.NewRequest("DELETE", "/bookings/AB12CD", nil)

	mockService.On("CancelBooking", c.Request.Context(), "AB12CD").Return(nil)

	handler.cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cancelled")
	mockService.AssertExpectations(t)
}

func TestBookingHandler_cancel_NotFoundOrAlreadyCancelled(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "pnr", Value: "AB12CD"}}
	c.Request = httptest.NewRequest("DELETE", "/bookings/AB12CD", nil)

	mockService.On("CancelBooking", c.Request.Context(), "AB12CD").Return(domain.ErrBookingNotFound)

	handler.cancel(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), codeNotFound)
}
