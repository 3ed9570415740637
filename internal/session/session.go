package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/AlexZinkM/gem/internal/card"
	"github.com/AlexZinkM/gem/internal/common"
	"github.com/AlexZinkM/gem/internal/export"
	"github.com/AlexZinkM/gem/internal/market"
	"github.com/AlexZinkM/gem/internal/model"
)

// MarketSource fetches an advisory market reading
type MarketSource interface {
	Fetch(ctx context.Context) market.Reading
}

// Defaults seed a new GiftCardState
type Defaults struct {
	Amount    string
	UnitPrice float64
	Height    uint64
	FiatCode  string
}

// NewState builds the starting state for a session in Generated mode.
func NewState(d Defaults, today time.Time) (model.GiftCardState, error) {
	amount, err := common.XMRToPiconero(d.Amount)
	if err != nil || amount == 0 {
		return model.GiftCardState{}, fmt.Errorf("%w: default %q", ErrInvalidAmount, d.Amount)
	}
	if !validPrice(d.UnitPrice) {
		return model.GiftCardState{}, fmt.Errorf("%w: default %v", ErrInvalidPrice, d.UnitPrice)
	}
	return model.GiftCardState{
		Mode:        model.ModeGenerated,
		Amount:      amount,
		UnitPrice:   d.UnitPrice,
		FiatCode:    d.FiatCode,
		BlockHeight: d.Height,
		IssueDate:   model.DateOf(today),
	}, nil
}

// Session owns one card for the lifetime of the process. Every action runs
// to completion under the lock, so Render never sees a half-applied change.
type Session struct {
	mu       sync.Mutex
	card     Card
	rendered *card.RenderedCard

	creds    CredentialSource
	market   MarketSource
	template *card.Template
	font     *card.FontFace
	sink     export.Sink
	now      func() time.Time
	logger   *zap.Logger
}

// Deps are the collaborators a Session drives
type Deps struct {
	Credentials CredentialSource
	Market      MarketSource
	Template    *card.Template
	Font        *card.FontFace
	Sink        export.Sink
	Now         func() time.Time
	Logger      *zap.Logger
}

// New creates a Session around initial.
func New(initial model.GiftCardState, deps Deps) (*Session, error) {
	if deps.Credentials == nil || deps.Template == nil || deps.Font == nil || deps.Sink == nil {
		return nil, errors.New("session requires credentials, template, font and sink")
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Session{
		card:     Card{State: initial.Clone()},
		creds:    deps.Credentials,
		market:   deps.Market,
		template: deps.Template,
		font:     deps.Font,
		sink:     deps.Sink,
		now:      deps.Now,
		logger:   deps.Logger,
	}, nil
}

// Boot runs the first auto-fill: market data, then a fresh wallet.
func (s *Session) Boot(ctx context.Context) error {
	if err := s.RefreshMarket(ctx); err != nil && !errors.Is(err, ErrWrongMode) {
		return err
	}
	if s.Card().State.Mode != model.ModeGenerated {
		return nil
	}
	return s.Generate()
}

// Card returns a copy of the current card
func (s *Session) Card() Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.card
	c.State = c.State.Clone()
	return c
}

// apply runs a transition under the lock and keeps whatever card it returns.
func (s *Session) apply(action string, fn func(Card) (Card, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.card)
	s.card = next
	s.rendered = nil
	if err != nil {
		s.logger.Warn("action finished with error", zap.String("action", action), zap.Error(err))
		return err
	}
	s.logger.Info("action applied",
		zap.String("action", action),
		zap.String("mode", string(next.State.Mode)),
		zap.Uint64("height", next.State.BlockHeight))
	return nil
}

// Generate replaces the wallet with a new one ("Generate New Wallet").
func (s *Session) Generate() error {
	return s.apply("generate", func(c Card) (Card, error) {
		return ApplyGenerate(c, s.creds)
	})
}

// UpdateQR redraws both codes from the current wallet ("Update QR Codes").
func (s *Session) UpdateQR() error {
	return s.apply("update_qr", ApplyUpdateQR)
}

// Edit applies a form edit
func (s *Session) Edit(e Edit) error {
	return s.apply("edit", func(c Card) (Card, error) {
		return ApplyEdit(c, e)
	})
}

// SetMode switches modes. Entering Generated mode refreshes market data.
func (s *Session) SetMode(ctx context.Context, mode model.Mode) error {
	if err := s.apply("set_mode", func(c Card) (Card, error) {
		return ApplySetMode(c, mode)
	}); err != nil {
		return err
	}
	if mode == model.ModeGenerated {
		return s.RefreshMarket(ctx)
	}
	return nil
}

// RefreshMarket fetches market data outside the lock and applies it in one step.
func (s *Session) RefreshMarket(ctx context.Context) error {
	if s.market == nil {
		return nil
	}
	if s.Card().State.Mode != model.ModeGenerated {
		return fmt.Errorf("market: %w", ErrWrongMode)
	}
	reading := s.market.Fetch(ctx)
	return s.apply("market", func(c Card) (Card, error) {
		return ApplyMarket(c, reading)
	})
}

// Render composes the current card, reusing the last result while nothing changed.
// It fails with ErrMissingQR until both codes are drawn.
func (s *Session) Render() (*card.RenderedCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderLocked()
}

func (s *Session) renderLocked() (*card.RenderedCard, error) {
	if s.rendered != nil {
		return s.rendered, nil
	}
	if s.card.QRMain == nil || s.card.QRAddr == nil {
		return nil, ErrMissingQR
	}
	rc, err := card.Compose(s.template, s.card.State, s.card.QRMain, s.card.QRAddr, s.font)
	if err != nil {
		return nil, fmt.Errorf("failed to compose card: %w", err)
	}
	s.rendered = rc
	return rc, nil
}

// Save exports the most recently composed card under a timestamped name.
func (s *Session) Save() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rc, err := s.renderLocked()
	if err != nil {
		return "", err
	}
	path, err := s.sink.Save(card.Flatten(rc.Image), export.SuggestedName(s.now()))
	if err != nil {
		s.logger.Error("card export failed", zap.Error(err))
		return "", err
	}
	s.logger.Info("card exported", zap.String("path", path))
	return path, nil
}
