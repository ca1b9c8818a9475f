// Package payment models the authorization gate the booking ledger consults
// before touching inventory. The real processor integration is out of scope;
// the gate is a capability swapped in at composition time.
package payment

import (
	"context"
	"math/rand"

	"github.com/mtereshin/skyfare/internal/domain"
)

type AuthorizeRequest struct {
	FlightID      int64
	PassengerName string
	Seats         int
}

// Gate returns nil to approve a booking attempt or
// domain.ErrPaymentDeclined to reject it.
type Gate interface {
	Authorize(ctx context.Context, req AuthorizeRequest) error
}

// RateGate declines a configurable fraction of attempts. Rate 0 approves
// everything.
type RateGate struct {
	declineRate float64
}

func NewRateGate(declineRate float64) *RateGate {
	if declineRate < 0 {
		declineRate = 0
	}
	if declineRate > 1 {
		declineRate = 1
	}
	return &RateGate{declineRate: declineRate}
}

func (g *RateGate) Authorize(ctx context.Context, req AuthorizeRequest) error {
	if g.declineRate > 0 && rand.Float64() < g.declineRate {
		return domain.ErrPaymentDeclined
	}
	return nil
}

// StaticGate always returns the configured result; the deterministic test
// double.
type StaticGate struct {
	Err error
}

func (g StaticGate) Authorize(ctx context.Context, req AuthorizeRequest) error {
	return g.Err
}

var (
	_ Gate = (*RateGate)(nil)
	_ Gate = StaticGate{}
)
