package wallet

import (
	"errors"
	"fmt"
)

const (
	seedLanguage = "en"
	seedType     = "original"
	// mainNetwork is the network/account index standard addresses are derived for.
	mainNetwork = 0
)

// ErrCredential marks any rejection by the key derivation capability.
var ErrCredential = errors.New("credential derivation failed")

// KeyDeriver is the seed and key derivation capability a Generator drives.
// Keys travel as hex strings.
type KeyDeriver interface {
	GenerateSeed(language, kind string) ([]string, error)
	DeriveHexSeed(words []string) (string, error)
	DerivePrivKeys(hexSeed string) (spend, view string, err error)
	DerivePubKey(privKey string) (string, error)
	DeriveAddress(pubSpend, pubView string, network int) (string, error)
}

// Credentials is a seed phrase and the address it controls.
type Credentials struct {
	SeedPhrase []string
	Address    string
}

// Generator produces fresh wallet credentials.
type Generator struct {
	deriver KeyDeriver
}

// NewGenerator creates a Generator backed by deriver
func NewGenerator(deriver KeyDeriver) *Generator {
	return &Generator{deriver: deriver}
}

// Generate creates a new seed phrase and derives its address.
// Nothing is retried; the first failing step aborts with ErrCredential.
func (g *Generator) Generate() (Credentials, error) {
	words, err := g.deriver.GenerateSeed(seedLanguage, seedType)
	if err != nil {
		return Credentials{}, wrap("generate seed", err)
	}
	if len(words) == 0 {
		return Credentials{}, wrap("generate seed", errors.New("empty seed phrase"))
	}

	hexSeed, err := g.deriver.DeriveHexSeed(words)
	if err != nil {
		return Credentials{}, wrap("derive hex seed", err)
	}

	privSpend, privView, err := g.deriver.DerivePrivKeys(hexSeed)
	if err != nil {
		return Credentials{}, wrap("derive private keys", err)
	}

	pubSpend, err := g.deriver.DerivePubKey(privSpend)
	if err != nil {
		return Credentials{}, wrap("derive public spend key", err)
	}
	pubView, err := g.deriver.DerivePubKey(privView)
	if err != nil {
		return Credentials{}, wrap("derive public view key", err)
	}

	address, err := g.deriver.DeriveAddress(pubSpend, pubView, mainNetwork)
	if err != nil {
		return Credentials{}, wrap("derive address", err)
	}

	return Credentials{SeedPhrase: words, Address: address}, nil
}

func wrap(step string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrCredential, step, err)
}

// IsCredentialError checks if err came from a failed derivation
func IsCredentialError(err error) bool {
	return errors.Is(err, ErrCredential)
}
