package flights

import (
	"context"
	"net/url"

	"github.com/mtereshin/skyfare/internal/clock"
	"github.com/mtereshin/skyfare/internal/domain"
	"github.com/mtereshin/skyfare/internal/farehistory"
	"github.com/mtereshin/skyfare/internal/pricing"
	"github.com/mtereshin/skyfare/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.QuotedFlight, error)
	Search(ctx context.Context, origin, destination, date string) ([]domain.QuotedFlight, error)
	Sort(ctx context.Context, field, order string) ([]domain.QuotedFlight, error)
	GetByID(ctx context.Context, id int64) (*domain.QuotedFlight, error)
}

type Cache interface {
	GetQuotes(ctx context.Context, key string) ([]domain.QuotedFlight, error)
	SetQuotes(ctx context.Context, key string, quotes []domain.QuotedFlight) error
}

// FlightService serves the browse surface: flight rows priced at the moment
// of the request. The quote is computed per request, cached briefly, and
// mirrored to the fare history sink without ever failing the caller.
type FlightService struct {
	repo     repository.FlightRepository
	cache    Cache
	recorder farehistory.Recorder
	clock    clock.Clock
}

func NewFlightService(repo repository.FlightRepository, cache Cache, recorder farehistory.Recorder, clk clock.Clock) *FlightService {
	if recorder == nil {
		recorder = farehistory.NopRecorder{}
	}
	return &FlightService{repo: repo, cache: cache, recorder: recorder, clock: clk}
}

func (s *FlightService) List(ctx context.Context) ([]domain.QuotedFlight, error) {
	return s.cached(ctx, "list", func() ([]domain.Flight, error) {
		return s.repo.List(ctx)
	})
}

func (s *FlightService) Search(ctx context.Context, origin, destination, date string) ([]domain.QuotedFlight, error) {
	key := cacheKey("search", origin, destination, date)
	return s.cached(ctx, key, func() ([]domain.Flight, error) {
		return s.repo.Search(ctx, origin, destination, date)
	})
}

func (s *FlightService) Sort(ctx context.Context, field, order string) ([]domain.QuotedFlight, error) {
	key := cacheKey("sort", field, order)
	return s.cached(ctx, key, func() ([]domain.Flight, error) {
		return s.repo.SortBy(ctx, field, order)
	})
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.QuotedFlight, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	quotes := s.quote([]domain.Flight{*f})
	return &quotes[0], nil
}

// cacheKey escapes each request-supplied part so a value containing the
// separator cannot collide with a different query's key.
func cacheKey(prefix string, parts ...string) string {
	key := prefix
	for _, p := range parts {
		key += ":" + url.QueryEscape(p)
	}
	return key
}

func (s *FlightService) cached(ctx context.Context, key string, load func() ([]domain.Flight, error)) ([]domain.QuotedFlight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetQuotes(ctx, key); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := load()
	if err != nil {
		return nil, err
	}
	quotes := s.quote(flights)

	if s.cache != nil {
		_ = s.cache.SetQuotes(ctx, key, quotes)
	}
	return quotes, nil
}

func (s *FlightService) quote(flights []domain.Flight) []domain.QuotedFlight {
	now := s.clock.Now()
	quotes := make([]domain.QuotedFlight, 0, len(flights))
	for _, f := range flights {
		price := pricing.Quote(f, now)
		quotes = append(quotes, domain.QuotedFlight{Flight: f, DynamicPrice: price})
		s.recorder.Record(domain.FareQuote{
			FlightID:       f.ID,
			Timestamp:      now,
			ComputedFare:   price,
			SeatsAvailable: f.SeatsAvailable,
			DemandIndex:    f.DemandIndex,
		})
	}
	return quotes
}

var _ FlightUseCase = (*FlightService)(nil)
