package market

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// ErrNetwork marks a failed or malformed advisory lookup.
var ErrNetwork = errors.New("market data unavailable")

// HeightSource reports the current chain height
type HeightSource interface {
	GetBlockCount(ctx context.Context) (uint64, error)
}

// PriceSource reports the fiat price of one unit of an asset
type PriceSource interface {
	GetPrice(ctx context.Context, asset, fiat string) (float64, error)
}

// Reading is one best-effort snapshot. Nil fields were not obtained and
// must leave the previous values alone.
type Reading struct {
	Height *uint64
	Price  *float64
	Date   time.Time
}

// Snapshot fetches the advisory chain height and unit price.
type Snapshot struct {
	heights HeightSource
	prices  PriceSource
	asset   string
	fiat    string
	margin  uint64
	now     func() time.Time
	logger  *zap.Logger
}

// Option configures a Snapshot
type Option func(*Snapshot)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Snapshot) {
		s.now = now
	}
}

// NewSnapshot creates a Snapshot. margin is subtracted from the remote height
// so a restore scan starts safely before the tip the card was made at.
func NewSnapshot(heights HeightSource, prices PriceSource, asset, fiat string, margin uint64, logger *zap.Logger, opts ...Option) *Snapshot {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Snapshot{
		heights: heights,
		prices:  prices,
		asset:   asset,
		fiat:    fiat,
		margin:  margin,
		now:     time.Now,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch runs both lookups independently. Failures are logged and absorbed.
func (s *Snapshot) Fetch(ctx context.Context) Reading {
	reading := Reading{Date: s.now()}

	if height, err := s.height(ctx); err != nil {
		s.logger.Warn("block height lookup failed", zap.Error(err))
	} else {
		reading.Height = &height
	}

	if price, err := s.price(ctx); err != nil {
		s.logger.Warn("price lookup failed", zap.String("asset", s.asset), zap.String("fiat", s.fiat), zap.Error(err))
	} else {
		reading.Price = &price
	}

	return reading
}

func (s *Snapshot) height(ctx context.Context) (uint64, error) {
	if s.heights == nil {
		return 0, ErrNetwork
	}
	count, err := s.heights.GetBlockCount(ctx)
	if err != nil {
		return 0, errors.Join(ErrNetwork, err)
	}
	if count <= s.margin {
		return 0, nil
	}
	return count - s.margin, nil
}

func (s *Snapshot) price(ctx context.Context) (float64, error) {
	if s.prices == nil {
		return 0, ErrNetwork
	}
	price, err := s.prices.GetPrice(ctx, s.asset, s.fiat)
	if err != nil {
		return 0, errors.Join(ErrNetwork, err)
	}
	return price, nil
}
