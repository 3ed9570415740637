package model

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/AlexZinkM/gem/internal/common"
)

// Mode tells where the wallet credentials on a card came from
type Mode string

const (
	// ModeGenerated means seed and address come from the credential provider and are read-only.
	ModeGenerated Mode = "generated"
	// ModeImported means the operator typed the address (and maybe a seed) by hand.
	ModeImported Mode = "imported"
)

// Valid reports whether m is one of the known modes
func (m Mode) Valid() bool {
	return m == ModeGenerated || m == ModeImported
}

// Input limits, in characters, applied when a field is set.
const (
	MessageMaxLen   = 60
	ContactMaxLen   = 60
	SenderMaxLen    = 15
	RecipientMaxLen = 18
	TxIDsMaxLen     = 120
)

// GiftCardState is everything that ends up printed or encoded on a card.
type GiftCardState struct {
	Mode           Mode
	SeedPhrase     []string
	Address        string
	Amount         uint64 // piconero
	UnitPrice      float64
	FiatCode       string
	BlockHeight    uint64
	IssueDate      time.Time
	Message        string
	Sender         string
	Recipient      string
	Contact        string
	TransactionIDs []string
}

// Clone returns a deep copy so transitions never share slices with their input.
func (s GiftCardState) Clone() GiftCardState {
	out := s
	out.SeedPhrase = append([]string(nil), s.SeedPhrase...)
	out.TransactionIDs = append([]string(nil), s.TransactionIDs...)
	return out
}

// AmountXMR returns the amount as a decimal XMR string
func (s GiftCardState) AmountXMR() string {
	return common.PiconeroToXMR(s.Amount)
}

// TotalFiat returns UnitPrice * Amount with two decimals
func (s GiftCardState) TotalFiat() string {
	return common.FiatTotal(s.Amount, s.UnitPrice)
}

// SeedText joins the seed words with single spaces
func (s GiftCardState) SeedText() string {
	return strings.Join(s.SeedPhrase, " ")
}

// Truncate cuts s to at most max characters without splitting a rune.
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

// ParseSeed splits a typed seed phrase into words.
func ParseSeed(input string) []string {
	return strings.Fields(input)
}

// ParseTxIDs splits the comma separated txid input. Spaces are removed and
// empty entries dropped; the raw input is bounded by TxIDsMaxLen first.
func ParseTxIDs(input string) []string {
	input = Truncate(input, TxIDsMaxLen)
	input = strings.ReplaceAll(input, " ", "")
	var ids []string
	for _, id := range strings.Split(input, ",") {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// DateOf drops the time of day from t, keeping its location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
