package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking is a ledger entry. A booking is created CONFIRMED and transitions
// at most once to CANCELLED; it is never deleted.
type Booking struct {
	ID            string        `json:"booking_id"`
	FlightID      int64         `json:"flight_id"`
	PassengerName string        `json:"passenger_name"`
	SeatsBooked   int           `json:"seats_booked"`
	FinalPrice    float64       `json:"final_price"`
	Status        BookingStatus `json:"status"`
	PNR           string        `json:"pnr"`
	BookingTime   time.Time     `json:"booking_time"`
}
