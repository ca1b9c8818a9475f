package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtereshin/skyfare/internal/domain"
)

type BookingRepository interface {
	// Create inserts a CONFIRMED booking and decrements the flight's
	// available seats in one transaction, filling in FinalPrice from the
	// flight's stored per-seat fare.
	Create(ctx context.Context, booking *domain.Booking) error
	GetByPNR(ctx context.Context, pnr string) (*domain.Booking, error)
	// Cancel flips a CONFIRMED booking to CANCELLED and returns the seats
	// to the flight in one transaction. An unknown or already-cancelled PNR
	// reports domain.ErrBookingNotFound.
	Cancel(ctx context.Context, pnr string) error
}

const bookingColumns = `id, flight_id, passenger_name, seats_booked, final_price, status, pnr, booking_time`

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	err := withTxRetry(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var baseFare float64
		var available int
		row := tx.QueryRow(ctx, `SELECT base_fare, seats_available FROM flights WHERE id = $1 FOR UPDATE`, booking.FlightID)
		if err := row.Scan(&baseFare, &available); err != nil {
			if err == pgx.ErrNoRows {
				return domain.ErrFlightNotFound
			}
			return err
		}
		if available < booking.SeatsBooked {
			return domain.ErrInsufficientSeats
		}

		// Bookings charge the stored per-seat fare, not the dynamic quote.
		// Dirty datasets can carry a zero fare; the ledger still requires a
		// positive final price.
		perSeat := baseFare
		if perSeat <= 0 {
			perSeat = 1.0
		}
		booking.FinalPrice = perSeat * float64(booking.SeatsBooked)
		booking.Status = domain.BookingStatusConfirmed

		// The guard re-checks availability so a concurrent booking committed
		// between the read and this write can never drive the count negative.
		cmd, err := tx.Exec(ctx, `UPDATE flights SET seats_available = seats_available - $2, updated_at = now() WHERE id = $1 AND seats_available >= $2`, booking.FlightID, booking.SeatsBooked)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrInsufficientSeats
		}

		_, err = tx.Exec(ctx, `INSERT INTO bookings (`+bookingColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			booking.ID, booking.FlightID, booking.PassengerName, booking.SeatsBooked, booking.FinalPrice, booking.Status, booking.PNR, booking.BookingTime)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrPNRTaken
			}
			return err
		}
		return nil
	})
	if isSerializationFailure(err) {
		return domain.ErrConflict
	}
	return err
}

func (r *PGBookingRepository) GetByPNR(ctx context.Context, pnr string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE pnr = $1`, pnr)
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.FlightID, &b.PassengerName, &b.SeatsBooked, &b.FinalPrice, &b.Status, &b.PNR, &b.BookingTime); err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGBookingRepository) Cancel(ctx context.Context, pnr string) error {
	err := withTxRetry(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var flightID int64
		var seats int
		// Matching on CONFIRMED makes cancellation one-shot: a second cancel
		// of the same PNR finds no row and the seats are returned exactly
		// once.
		row := tx.QueryRow(ctx, `UPDATE bookings SET status = $2 WHERE pnr = $1 AND status = $3 RETURNING flight_id, seats_booked`,
			pnr, domain.BookingStatusCancelled, domain.BookingStatusConfirmed)
		if err := row.Scan(&flightID, &seats); err != nil {
			if err == pgx.ErrNoRows {
				return domain.ErrBookingNotFound
			}
			return err
		}

		_, err := tx.Exec(ctx, `UPDATE flights SET seats_available = seats_available + $2, updated_at = now() WHERE id = $1`, flightID, seats)
		return err
	})
	if isSerializationFailure(err) {
		return domain.ErrConflict
	}
	return err
}

var _ BookingRepository = (*PGBookingRepository)(nil)
