// Package booking is the reservation ledger: the only writer of
// seats_available and booking status. Every create or cancel runs as one
// atomic transaction in the repository, so the inventory invariants hold at
// every commit boundary even under concurrent requests.
package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mtereshin/skyfare/internal/clock"
	"github.com/mtereshin/skyfare/internal/domain"
	"github.com/mtereshin/skyfare/internal/payment"
	"github.com/mtereshin/skyfare/internal/repository"
)

// maxPNRAttempts bounds regeneration when a generated PNR collides with an
// existing one.
const maxPNRAttempts = 5

var (
	ErrSeatsRequired     = errors.New("seats must be at least 1")
	ErrPassengerRequired = errors.New("passenger name is required")
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	GetBooking(ctx context.Context, pnr string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, pnr string) error
}

type CreateBookingInput struct {
	FlightID      int64  `json:"flight_id"`
	PassengerName string `json:"passenger_name"`
	Seats         int    `json:"seats"`
}

type BookingService struct {
	bookings repository.BookingRepository
	gate     payment.Gate
	clock    clock.Clock
}

func NewBookingService(bookings repository.BookingRepository, gate payment.Gate, clk clock.Clock) *BookingService {
	return &BookingService{bookings: bookings, gate: gate, clock: clk}
}

// CreateBooking authorizes payment, then atomically decrements the flight's
// available seats and inserts a CONFIRMED booking. The charged price is the
// flight's stored per-seat fare times the seat count; the dynamic quote
// shown while browsing is display-only (see DESIGN.md).
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.Seats < 1 {
		return nil, ErrSeatsRequired
	}
	if input.PassengerName == "" {
		return nil, ErrPassengerRequired
	}

	if err := s.gate.Authorize(ctx, payment.AuthorizeRequest{
		FlightID:      input.FlightID,
		PassengerName: input.PassengerName,
		Seats:         input.Seats,
	}); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:            uuid.NewString(),
		FlightID:      input.FlightID,
		PassengerName: input.PassengerName,
		SeatsBooked:   input.Seats,
		BookingTime:   s.clock.Now(),
	}

	var err error
	for attempt := 0; attempt < maxPNRAttempts; attempt++ {
		booking.PNR, err = NewPNR()
		if err != nil {
			return nil, err
		}
		err = s.bookings.Create(ctx, booking)
		if !errors.Is(err, repository.ErrPNRTaken) {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) GetBooking(ctx context.Context, pnr string) (*domain.Booking, error) {
	return s.bookings.GetByPNR(ctx, pnr)
}

// CancelBooking flips the booking to CANCELLED and returns its seats to the
// flight. An unknown PNR and an already-cancelled one are the same
// externally visible condition.
func (s *BookingService) CancelBooking(ctx context.Context, pnr string) error {
	return s.bookings.Cancel(ctx, pnr)
}

var _ BookingUseCase = (*BookingService)(nil)
