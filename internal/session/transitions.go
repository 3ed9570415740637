package session

import (
	"errors"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/AlexZinkM/gem/internal/common"
	"github.com/AlexZinkM/gem/internal/market"
	"github.com/AlexZinkM/gem/internal/model"
	"github.com/AlexZinkM/gem/internal/qr"
	"github.com/AlexZinkM/gem/internal/redeem"
	"github.com/AlexZinkM/gem/internal/wallet"
)

var (
	ErrWrongMode     = errors.New("action not available in this mode")
	ErrUnknownMode   = errors.New("unknown mode")
	ErrReadOnlyField = errors.New("field is read-only for generated wallets")
	ErrEmptyAddress  = errors.New("address is empty")
	ErrInvalidAmount = errors.New("amount must be a positive XMR value")
	ErrInvalidPrice  = errors.New("unit price must be a finite, non-negative number")
	ErrMissingQR     = errors.New("card has no qr codes, update them first")
)

// Card is the state plus the QR bitmaps derived from it. A nil bitmap has
// not been generated since the last mode switch.
type Card struct {
	State  model.GiftCardState
	QRMain *image.Gray
	QRAddr *image.Gray
}

// CredentialSource produces new wallet credentials
type CredentialSource interface {
	Generate() (wallet.Credentials, error)
}

// Params returns what the redemption code encodes for the current mode.
// Transaction ids only travel with imported wallets.
func Params(state model.GiftCardState) redeem.Params {
	p := redeem.Params{
		Address: state.Address,
		Seed:    state.SeedPhrase,
		Height:  state.BlockHeight,
	}
	if state.Mode == model.ModeImported {
		p.TxIDs = state.TransactionIDs
	}
	return p
}

// URIs returns the redemption URI and the address URI for state.
func URIs(state model.GiftCardState) (redemption, address string) {
	return redeem.Encode(Params(state)), redeem.AddressURI(state.Address)
}

// ApplyGenerate replaces the wallet with fresh credentials and redraws both codes.
// On any failure the input card is returned unchanged.
func ApplyGenerate(c Card, src CredentialSource) (Card, error) {
	if c.State.Mode != model.ModeGenerated {
		return c, fmt.Errorf("generate: %w", ErrWrongMode)
	}
	creds, err := src.Generate()
	if err != nil {
		return c, err
	}

	next := Card{State: c.State.Clone()}
	next.State.SeedPhrase = creds.SeedPhrase
	next.State.Address = creds.Address
	redemption, address := URIs(next.State)

	if next.QRMain, err = qr.Synthesize(redemption, qr.MainSize, qr.MainSize); err != nil {
		return c, fmt.Errorf("generate: redemption code: %w", err)
	}
	if next.QRAddr, err = qr.Synthesize(address, qr.AddressSize, qr.AddressSize); err != nil {
		return c, fmt.Errorf("generate: address code: %w", err)
	}
	return next, nil
}

// ApplyUpdateQR redraws both codes from the wallet currently on the card, in
// either mode. A code that cannot be synthesized keeps its previous bitmap and
// the error is returned alongside the card, which is still the one to keep.
func ApplyUpdateQR(c Card) (Card, error) {
	if c.State.Address == "" {
		return c, fmt.Errorf("update qr: %w", ErrEmptyAddress)
	}

	next := Card{State: c.State.Clone(), QRMain: c.QRMain, QRAddr: c.QRAddr}
	redemption, address := URIs(next.State)

	var errs []error
	if img, err := qr.Synthesize(redemption, qr.MainSize, qr.MainSize); err != nil {
		errs = append(errs, fmt.Errorf("redemption code: %w", err))
	} else {
		next.QRMain = img
	}
	if img, err := qr.Synthesize(address, qr.AddressSize, qr.AddressSize); err != nil {
		errs = append(errs, fmt.Errorf("address code: %w", err))
	} else {
		next.QRAddr = img
	}
	return next, errors.Join(errs...)
}

// ApplySetMode switches modes. Switching clears both codes; credentials stay.
func ApplySetMode(c Card, mode model.Mode) (Card, error) {
	if !mode.Valid() {
		return c, fmt.Errorf("%w %q", ErrUnknownMode, mode)
	}
	if c.State.Mode == mode {
		return c, nil
	}
	next := Card{State: c.State.Clone()}
	next.State.Mode = mode
	return next, nil
}

// Edit is a partial update from the form. Nil fields are left alone.
type Edit struct {
	Amount      *string
	UnitPrice   *float64
	BlockHeight *uint64
	IssueDate   *time.Time
	Message     *string
	Sender      *string
	Recipient   *string
	Contact     *string
	TxIDs       *string
	Address     *string
	Seed        *string
}

// ApplyEdit validates every field of e, then applies them together. Text is
// truncated to its limit here. Codes are not redrawn.
func ApplyEdit(c Card, e Edit) (Card, error) {
	if c.State.Mode == model.ModeGenerated {
		switch {
		case e.Address != nil:
			return c, fmt.Errorf("address: %w", ErrReadOnlyField)
		case e.Seed != nil:
			return c, fmt.Errorf("seed: %w", ErrReadOnlyField)
		case e.BlockHeight != nil:
			return c, fmt.Errorf("block height: %w", ErrReadOnlyField)
		case e.IssueDate != nil:
			return c, fmt.Errorf("issue date: %w", ErrReadOnlyField)
		case e.UnitPrice != nil:
			return c, fmt.Errorf("unit price: %w", ErrReadOnlyField)
		}
	}

	next := Card{State: c.State.Clone(), QRMain: c.QRMain, QRAddr: c.QRAddr}
	s := &next.State
	if e.Amount != nil {
		amount, err := common.XMRToPiconero(*e.Amount)
		if err != nil || amount == 0 {
			return c, fmt.Errorf("%w: %q", ErrInvalidAmount, *e.Amount)
		}
		s.Amount = amount
	}
	if e.UnitPrice != nil {
		if !validPrice(*e.UnitPrice) {
			return c, ErrInvalidPrice
		}
		s.UnitPrice = *e.UnitPrice
	}
	if e.BlockHeight != nil {
		s.BlockHeight = *e.BlockHeight
	}
	if e.IssueDate != nil {
		s.IssueDate = model.DateOf(*e.IssueDate)
	}
	if e.Message != nil {
		s.Message = model.Truncate(*e.Message, model.MessageMaxLen)
	}
	if e.Sender != nil {
		s.Sender = model.Truncate(*e.Sender, model.SenderMaxLen)
	}
	if e.Recipient != nil {
		s.Recipient = model.Truncate(*e.Recipient, model.RecipientMaxLen)
	}
	if e.Contact != nil {
		s.Contact = model.Truncate(*e.Contact, model.ContactMaxLen)
	}
	if e.TxIDs != nil {
		s.TransactionIDs = model.ParseTxIDs(*e.TxIDs)
	}
	if e.Address != nil {
		s.Address = *e.Address
	}
	if e.Seed != nil {
		s.SeedPhrase = model.ParseSeed(*e.Seed)
	}
	return next, nil
}

// ApplyMarket applies a reading as one change: height and price when present,
// and always the date. Imported cards keep their hand-entered values.
// A redemption code already drawn is redrawn so it carries the new height;
// if that fails nothing is applied.
func ApplyMarket(c Card, r market.Reading) (Card, error) {
	if c.State.Mode != model.ModeGenerated {
		return c, fmt.Errorf("market: %w", ErrWrongMode)
	}
	next := Card{State: c.State.Clone(), QRMain: c.QRMain, QRAddr: c.QRAddr}
	if r.Height != nil {
		next.State.BlockHeight = *r.Height
	}
	if r.Price != nil && validPrice(*r.Price) {
		next.State.UnitPrice = *r.Price
	}
	if !r.Date.IsZero() {
		next.State.IssueDate = model.DateOf(r.Date)
	}

	if next.QRMain != nil && next.State.BlockHeight != c.State.BlockHeight {
		redemption, _ := URIs(next.State)
		img, err := qr.Synthesize(redemption, qr.MainSize, qr.MainSize)
		if err != nil {
			return c, fmt.Errorf("market: redemption code: %w", err)
		}
		next.QRMain = img
	}
	return next, nil
}

func validPrice(p float64) bool {
	return p >= 0 && !math.IsNaN(p) && !math.IsInf(p, 0)
}
