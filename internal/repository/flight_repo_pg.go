package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtereshin/skyfare/internal/domain"
)

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	Search(ctx context.Context, origin, destination, date string) ([]domain.Flight, error)
	SortBy(ctx context.Context, field, order string) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

// sortColumns is the allow-list of client-visible sort fields mapped to real
// columns. Every sort request must resolve through this map before any SQL
// is built; request input is never interpolated into a query.
var sortColumns = map[string]string{
	"price":          "base_fare",
	"base_fare":      "base_fare",
	"times":          "departure_time",
	"departure_time": "departure_time",
}

var sortOrders = map[string]string{
	"asc":  "ASC",
	"desc": "DESC",
}

const flightColumns = `id, origin, destination, departure_time, base_fare, seats_total, seats_available, demand_index, created_at, updated_at`

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFlights(rows)
}

func (r *PGFlightRepository) Search(ctx context.Context, origin, destination, date string) ([]domain.Flight, error) {
	query := `SELECT ` + flightColumns + ` FROM flights WHERE origin = $1 AND destination = $2`
	args := []any{origin, destination}
	if date != "" {
		query += ` AND departure_time LIKE $3`
		args = append(args, "%"+date+"%")
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFlights(rows)
}

func (r *PGFlightRepository) SortBy(ctx context.Context, field, order string) ([]domain.Flight, error) {
	column, ok := sortColumns[field]
	if !ok {
		return nil, domain.ErrInvalidSortField
	}
	direction, ok := sortOrders[order]
	if !ok {
		return nil, domain.ErrInvalidSortOrder
	}

	rows, err := r.db.Query(ctx, fmt.Sprintf(`SELECT %s FROM flights ORDER BY %s %s`, flightColumns, column, direction))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFlights(rows)
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id = $1`, id)
	var f domain.Flight
	if err := scanFlight(row, &f); err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrFlightNotFound
		}
		return nil, err
	}
	return &f, nil
}

func scanFlights(rows pgx.Rows) ([]domain.Flight, error) {
	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := scanFlight(rows, &f); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func scanFlight(row pgx.Row, f *domain.Flight) error {
	return row.Scan(&f.ID, &f.Origin, &f.Destination, &f.DepartureTime, &f.BaseFare, &f.SeatsTotal, &f.SeatsAvailable, &f.DemandIndex, &f.CreatedAt, &f.UpdatedAt)
}

var _ FlightRepository = (*PGFlightRepository)(nil)
