package monero

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"sort"
)

const (
	LanguageEnglish  = "en"
	SeedTypeOriginal = "original"
)

// EnglishPrefixLen is the unique prefix length of the English list.
const EnglishPrefixLen = 3

// ErrNoWordlist is returned when a seed language has no loaded wordlist.
var ErrNoWordlist = errors.New("no wordlist loaded for language")

// Deriver wires seed generation and key derivation behind one value.
type Deriver struct {
	rand  io.Reader
	lists map[string]*Wordlist
}

// NewDeriver creates a Deriver reading entropy from r (crypto/rand when nil).
func NewDeriver(r io.Reader) *Deriver {
	if r == nil {
		r = rand.Reader
	}
	return &Deriver{rand: r, lists: map[string]*Wordlist{}}
}

// AddWordlist registers the wordlist for a language.
func (d *Deriver) AddWordlist(language string, wl *Wordlist) {
	d.lists[language] = wl
}

// GenerateSeed returns a fresh seed phrase for the language and seed type.
func (d *Deriver) GenerateSeed(language, kind string) ([]string, error) {
	if kind != SeedTypeOriginal {
		return nil, fmt.Errorf("unsupported seed type %q", kind)
	}
	wl, ok := d.lists[language]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrNoWordlist, language)
	}
	entropy := make([]byte, keyLen)
	if _, err := io.ReadFull(d.rand, entropy); err != nil {
		return nil, fmt.Errorf("failed to read entropy: %w", err)
	}
	defer clear(entropy)

	// The seed is the private spend key itself, so keep it reduced.
	s, err := reduce32(entropy)
	if err != nil {
		return nil, err
	}
	return wl.Encode(s.Bytes())
}

// DeriveHexSeed decodes a seed phrase in any loaded language.
func (d *Deriver) DeriveHexSeed(words []string) (string, error) {
	if len(d.lists) == 0 {
		return "", ErrNoWordlist
	}
	languages := make([]string, 0, len(d.lists))
	for language := range d.lists {
		languages = append(languages, language)
	}
	sort.Strings(languages)

	var firstErr error
	for _, language := range languages {
		seed, err := d.lists[language].Decode(words)
		if err == nil {
			return hex.EncodeToString(seed), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return "", firstErr
}

// DerivePrivKeys see package-level DerivePrivKeys.
func (d *Deriver) DerivePrivKeys(hexSeed string) (string, string, error) {
	return DerivePrivKeys(hexSeed)
}

// DerivePubKey see package-level DerivePubKey.
func (d *Deriver) DerivePubKey(privKey string) (string, error) {
	return DerivePubKey(privKey)
}

// DeriveAddress see package-level DeriveAddress.
func (d *Deriver) DeriveAddress(pubSpend, pubView string, network int) (string, error) {
	return DeriveAddress(pubSpend, pubView, network)
}
