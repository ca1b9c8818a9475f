package domain

import "time"

// Flight is a seeded inventory row. DepartureTime is kept as the raw string
// from the dataset ("2006-01-02T15:04:05", "2006-01-02 15:04:05" or
// "2006-01-02"); pricing parses it defensively and treats anything else as
// far in the future. SeatsAvailable is mutated only through the booking
// ledger.
type Flight struct {
	ID             int64     `json:"id"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	DepartureTime  string    `json:"departure_time"`
	BaseFare       float64   `json:"base_fare"`
	SeatsTotal     int       `json:"seats_total"`
	SeatsAvailable int       `json:"seats_available"`
	DemandIndex    float64   `json:"demand_index"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// QuotedFlight is a flight augmented with the dynamic price computed for a
// specific reference time. The quote is display-only; bookings charge the
// stored base fare.
type QuotedFlight struct {
	Flight
	DynamicPrice float64 `json:"dynamic_price"`
}

// FareQuote is one append-only fare history record, written best-effort on
// every computed quote.
type FareQuote struct {
	FlightID       int64     `json:"flight_id"`
	Timestamp      time.Time `json:"timestamp"`
	ComputedFare   float64   `json:"computed_fare"`
	SeatsAvailable int       `json:"seats_available"`
	DemandIndex    float64   `json:"demand_index"`
}
