package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtereshin/skyfare/internal/domain"
)

type FareHistoryRepository interface {
	Append(ctx context.Context, quote domain.FareQuote) error
}

type PGFareHistoryRepository struct {
	db *pgxpool.Pool
}

func NewFareHistoryRepository(db *pgxpool.Pool) FareHistoryRepository {
	return &PGFareHistoryRepository{db: db}
}

func (r *PGFareHistoryRepository) Append(ctx context.Context, quote domain.FareQuote) error {
	_, err := r.db.Exec(ctx, `INSERT INTO fare_history (flight_id, timestamp, computed_fare, seats_available, demand_index) VALUES ($1, $2, $3, $4, $5)`,
		quote.FlightID, quote.Timestamp, quote.ComputedFare, quote.SeatsAvailable, quote.DemandIndex)
	return err
}

var _ FareHistoryRepository = (*PGFareHistoryRepository)(nil)
