package monero

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"
)

const keyLen = 32

// Network prefixes for standard addresses, indexed by network number.
var networkBytes = []byte{
	18, // mainnet
	53, // testnet
	24, // stagenet
}

// ErrInvalidKey is returned when a hex key is malformed or not a canonical point.
var ErrInvalidKey = errors.New("invalid key")

// keccak256 is the pre-standard Keccak used everywhere in Monero.
func keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// reduce32 interprets b as a little-endian integer and reduces it mod l.
func reduce32(b []byte) (*edwards25519.Scalar, error) {
	if len(b) != keyLen {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidKey, keyLen, len(b))
	}
	wide := make([]byte, 64)
	copy(wide, b)
	s, err := edwards25519.NewScalar().SetUniformBytes(wide)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return s, nil
}

func decodeKey(hexKey string) ([]byte, error) {
	b, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if len(b) != keyLen {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidKey, keyLen, len(b))
	}
	return b, nil
}

// DerivePrivKeys returns the private spend and view keys for a hex seed.
// spend = sc_reduce32(seed), view = sc_reduce32(keccak256(spend)).
func DerivePrivKeys(hexSeed string) (spend, view string, err error) {
	seed, err := decodeKey(hexSeed)
	if err != nil {
		return "", "", err
	}
	spendScalar, err := reduce32(seed)
	if err != nil {
		return "", "", err
	}
	viewScalar, err := reduce32(keccak256(spendScalar.Bytes()))
	if err != nil {
		return "", "", err
	}
	return hex.EncodeToString(spendScalar.Bytes()), hex.EncodeToString(viewScalar.Bytes()), nil
}

// DerivePubKey returns priv*G for a canonical hex private key.
func DerivePubKey(privKey string) (string, error) {
	b, err := decodeKey(privKey)
	if err != nil {
		return "", err
	}
	s, err := edwards25519.NewScalar().SetCanonicalBytes(b)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return hex.EncodeToString(new(edwards25519.Point).ScalarBaseMult(s).Bytes()), nil
}

// DeriveAddress builds the standard address for a pair of public keys.
func DeriveAddress(pubSpend, pubView string, network int) (string, error) {
	if network < 0 || network >= len(networkBytes) {
		return "", fmt.Errorf("unknown network %d", network)
	}
	spend, err := decodeKey(pubSpend)
	if err != nil {
		return "", err
	}
	view, err := decodeKey(pubView)
	if err != nil {
		return "", err
	}
	for _, k := range [][]byte{spend, view} {
		if _, err := new(edwards25519.Point).SetBytes(k); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
	}

	data := make([]byte, 0, 1+2*keyLen+checksumLen)
	data = append(data, networkBytes[network])
	data = append(data, spend...)
	data = append(data, view...)
	data = append(data, keccak256(data)[:checksumLen]...)
	return encodeBase58(data), nil
}

// AddressKeys is the decoded form of a standard address.
type AddressKeys struct {
	Network  int
	PubSpend string
	PubView  string
}

// ParseAddress decodes a standard address and verifies its checksum.
func ParseAddress(address string) (AddressKeys, error) {
	data, err := decodeBase58(address)
	if err != nil {
		return AddressKeys{}, err
	}
	if len(data) != 1+2*keyLen+checksumLen {
		return AddressKeys{}, fmt.Errorf("invalid address length %d", len(data))
	}
	body, sum := data[:len(data)-checksumLen], data[len(data)-checksumLen:]
	if !bytes.Equal(keccak256(body)[:checksumLen], sum) {
		return AddressKeys{}, errors.New("invalid address checksum")
	}
	network := -1
	for i, b := range networkBytes {
		if b == body[0] {
			network = i
		}
	}
	if network < 0 {
		return AddressKeys{}, fmt.Errorf("unknown network byte %d", body[0])
	}
	return AddressKeys{
		Network:  network,
		PubSpend: hex.EncodeToString(body[1 : 1+keyLen]),
		PubView:  hex.EncodeToString(body[1+keyLen:]),
	}, nil
}
