package redeem

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Scheme is the URI scheme wallets register for restore codes.
const Scheme = "monero_wallet"

const (
	seedSeparator = "%20"
	txidSeparator = ","
)

// ErrMalformed is returned by Parse for strings that are not redemption URIs.
var ErrMalformed = errors.New("malformed redemption uri")

// Params is what a redemption URI carries.
type Params struct {
	Address string
	Seed    []string
	Height  uint64
	TxIDs   []string
}

// Encode builds monero_wallet:<address>?seed=..&height=..&txids=..
// Only the gaps between seed words become %20; nothing else is escaped.
// Unset parameters are left out and the order never changes.
func Encode(p Params) string {
	var query []string
	if len(p.Seed) > 0 {
		query = append(query, "seed="+strings.Join(p.Seed, seedSeparator))
	}
	if p.Height > 0 {
		query = append(query, "height="+strconv.FormatUint(p.Height, 10))
	}
	if ids := cleanTxIDs(p.TxIDs); len(ids) > 0 {
		query = append(query, "txids="+strings.Join(ids, txidSeparator))
	}

	uri := Scheme + ":" + p.Address
	if len(query) > 0 {
		uri += "?" + strings.Join(query, "&")
	}
	return uri
}

// AddressURI is the payload of the small address code: the bare address.
func AddressURI(address string) string {
	return address
}

func cleanTxIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.ReplaceAll(id, " ", ""); id != "" {
			out = append(out, id)
		}
	}
	return out
}

// Parse reads a URI produced by Encode. Any subset of the optional
// parameters may be missing; unknown parameters are ignored.
func Parse(uri string) (Params, error) {
	rest, ok := strings.CutPrefix(uri, Scheme+":")
	if !ok {
		return Params{}, fmt.Errorf("%w: missing %s: scheme", ErrMalformed, Scheme)
	}
	address, query, _ := strings.Cut(rest, "?")
	if address == "" {
		return Params{}, fmt.Errorf("%w: empty address", ErrMalformed)
	}

	p := Params{Address: address}
	if query == "" {
		return p, nil
	}
	for _, pair := range strings.Split(query, "&") {
		key, value, _ := strings.Cut(pair, "=")
		switch key {
		case "seed":
			p.Seed = splitNonEmpty(value, seedSeparator)
		case "height":
			h, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return Params{}, fmt.Errorf("%w: height %q", ErrMalformed, value)
			}
			p.Height = h
		case "txids":
			p.TxIDs = splitNonEmpty(value, txidSeparator)
		}
	}
	return p, nil
}

func splitNonEmpty(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
