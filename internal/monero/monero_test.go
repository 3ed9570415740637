package monero

import (
	"bytes"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// groupOrder is l in little-endian hex.
const groupOrder = "edd3f55c1a631258d69cf7a2def9de1400000000000000000000000000000010"

func testWordlist(t *testing.T) *Wordlist {
	t.Helper()
	words := make([]string, WordlistSize)
	for i := range words {
		words[i] = fmt.Sprintf("w%04d", i)
	}
	wl, err := NewWordlist(words, 5)
	require.NoError(t, err)
	return wl
}

func seedBytes() []byte {
	seed := make([]byte, keyLen)
	for i := range seed {
		seed[i] = byte(i * 7)
	}
	seed[31] = 0x0a
	return seed
}

func TestWordlistRoundTrip(t *testing.T) {
	wl := testWordlist(t)
	seed := seedBytes()

	words, err := wl.Encode(seed)
	require.NoError(t, err)
	require.Len(t, words, 25)

	decoded, err := wl.Decode(words)
	require.NoError(t, err)
	require.Equal(t, seed, decoded)

	decoded, err = wl.Decode(words[:24])
	require.NoError(t, err)
	require.Equal(t, seed, decoded)
}

func TestWordlistDecodeErrors(t *testing.T) {
	wl := testWordlist(t)
	words, err := wl.Encode(seedBytes())
	require.NoError(t, err)

	bad := append([]string(nil), words...)
	bad[24] = "w9999"
	_, err = wl.Decode(bad)
	require.ErrorIs(t, err, ErrInvalidChecksum)

	unknown := append([]string(nil), words[:24]...)
	unknown[3] = "nope"
	_, err = wl.Decode(unknown)
	require.ErrorIs(t, err, ErrUnknownWord)

	_, err = wl.Decode(words[:10])
	require.ErrorIs(t, err, ErrWordCount)
}

func TestNewWordlistValidation(t *testing.T) {
	_, err := NewWordlist([]string{"a"}, 3)
	require.Error(t, err)

	words := make([]string, WordlistSize)
	for i := range words {
		words[i] = fmt.Sprintf("same%04d", i)
	}
	_, err = NewWordlist(words, 3)
	require.ErrorContains(t, err, "share prefix")
}

func TestLoadWordlist(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < WordlistSize; i++ {
		fmt.Fprintf(&sb, "w%04d\n", i)
	}
	sb.WriteString("\n")
	path := filepath.Join(t.TempDir(), "english.txt")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o600))

	wl, err := LoadWordlist(path, 5)
	require.NoError(t, err)
	require.Equal(t, "w0042", wl.words[42])

	_, err = LoadWordlist(filepath.Join(t.TempDir(), "missing.txt"), 5)
	require.Error(t, err)
}

func TestDerivePubKeyOfOneIsBasePoint(t *testing.T) {
	one := "01" + strings.Repeat("00", 31)
	pub, err := DerivePubKey(one)
	require.NoError(t, err)
	require.Equal(t, "58"+strings.Repeat("66", 31), pub)
}

func TestDerivePrivKeysReducesSeed(t *testing.T) {
	spend, view, err := DerivePrivKeys(groupOrder)
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("00", 32), spend)
	require.Len(t, view, 64)

	_, _, err = DerivePrivKeys("zz")
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestDerivePubKeyRejectsNonCanonical(t *testing.T) {
	_, err := DerivePubKey(strings.Repeat("ff", 32))
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestBase58RoundTrip(t *testing.T) {
	for n := 0; n <= 3*fullBlockSize+1; n++ {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(255 - i*13)
		}
		if n > 2 {
			data[0], data[1] = 0, 0
		}
		encoded := encodeBase58(data)
		decoded, err := decodeBase58(encoded)
		require.NoError(t, err, "n=%d", n)
		require.True(t, bytes.Equal(data, decoded), "n=%d", n)
	}
}

func TestDeriverGeneratesParsableAddress(t *testing.T) {
	d := NewDeriver(bytes.NewReader(bytes.Repeat([]byte{0x42}, keyLen)))
	d.AddWordlist(LanguageEnglish, testWordlist(t))

	words, err := d.GenerateSeed(LanguageEnglish, SeedTypeOriginal)
	require.NoError(t, err)
	require.Len(t, words, 25)

	hexSeed, err := d.DeriveHexSeed(words)
	require.NoError(t, err)
	spend, view, err := d.DerivePrivKeys(hexSeed)
	require.NoError(t, err)
	require.Equal(t, hexSeed, spend, "a reduced seed is its own spend key")

	pubSpend, err := d.DerivePubKey(spend)
	require.NoError(t, err)
	pubView, err := d.DerivePubKey(view)
	require.NoError(t, err)

	address, err := d.DeriveAddress(pubSpend, pubView, 0)
	require.NoError(t, err)
	require.Len(t, address, 95)
	require.True(t, strings.HasPrefix(address, "4"))

	keys, err := ParseAddress(address)
	require.NoError(t, err)
	require.Equal(t, AddressKeys{Network: 0, PubSpend: pubSpend, PubView: pubView}, keys)

	corrupted := address[:94] + string(flip(address[94]))
	_, err = ParseAddress(corrupted)
	require.Error(t, err)
}

func TestDeriverErrors(t *testing.T) {
	d := NewDeriver(bytes.NewReader(nil))
	_, err := d.GenerateSeed(LanguageEnglish, SeedTypeOriginal)
	require.ErrorIs(t, err, ErrNoWordlist)

	_, err = d.DeriveHexSeed([]string{"a"})
	require.ErrorIs(t, err, ErrNoWordlist)

	d.AddWordlist(LanguageEnglish, testWordlist(t))
	_, err = d.GenerateSeed(LanguageEnglish, "polyseed")
	require.Error(t, err)

	_, err = d.GenerateSeed(LanguageEnglish, SeedTypeOriginal)
	require.Error(t, err, "empty entropy source")

	_, err = d.DeriveAddress(strings.Repeat("00", 32), strings.Repeat("00", 32), 7)
	require.Error(t, err)
}

func flip(c byte) byte {
	if c == '2' {
		return '3'
	}
	return '2'
}

func TestKeccak256KnownAnswer(t *testing.T) {
	require.Equal(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		hex.EncodeToString(keccak256()))
}

// RFC 8032 test 1: the clamped, reduced secret scalar times G is the public key.
func TestDerivePubKeyMatchesRFC8032(t *testing.T) {
	secret, err := hex.DecodeString("9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60")
	require.NoError(t, err)
	h := sha512.Sum512(secret)
	a := h[:32]
	a[0] &= 248
	a[31] &= 127
	a[31] |= 64

	spend, _, err := DerivePrivKeys(hex.EncodeToString(a))
	require.NoError(t, err)
	pub, err := DerivePubKey(spend)
	require.NoError(t, err)
	require.Equal(t, "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a", pub)
}

func TestBase58KnownBlocks(t *testing.T) {
	for in, want := range map[string]string{
		"00":               "11",
		"39":               "1z",
		"ff":               "5Q",
		"0000":             "111",
		"0039":             "11z",
		"0100":             "15R",
		"ffff":             "LUv",
		"0000000000000000": "11111111111",
		"ffffffffffffffff": "jpXCZedGfVQ",
	} {
		data, err := hex.DecodeString(in)
		require.NoError(t, err)
		require.Equal(t, want, encodeBase58(data), in)
	}
}

func TestMainnetAddressKnownAnswer(t *testing.T) {
	const seed = "00070e151c232a31383f464d545b626970777e858c939aa1a8afb6bdc4cbd20a"
	require.Equal(t, seed, hex.EncodeToString(seedBytes()))

	spend, view, err := DerivePrivKeys(seed)
	require.NoError(t, err)
	require.Equal(t, seed, spend)
	require.Equal(t, "d300d0fa3883cd523f84b1e95805e1450d3f536aa83a57f990d6fc359f61c005", view)

	pubSpend, err := DerivePubKey(spend)
	require.NoError(t, err)
	require.Equal(t, "9933b43cec4b2bc8e3d6cfe30bb6029e35bb8dc191903669208b3b62af1550f0", pubSpend)
	pubView, err := DerivePubKey(view)
	require.NoError(t, err)
	require.Equal(t, "1fea475fd1c6206b06e6aeda67910524ddc870e0a35314fd86b2af997407d376", pubView)

	address, err := DeriveAddress(pubSpend, pubView, 0)
	require.NoError(t, err)
	require.Equal(t, "47RqX2REHAzabtJqHCPqxmTTqP4eu8ASHJasAAx5f7KMhAWauE6uf8bJuJ9FFdqCse7AegWbtPr3VjQXEtiSoXm4ERNQ69h", address)
}

func TestMnemonicKnownAnswer(t *testing.T) {
	want := strings.Fields("w0462 w1449 w1582 w1300 w1272 w1583 w0512 w1096 w1586 w1350 w0919 w1587 " +
		"w0562 w0743 w1590 w1400 w0566 w1591 w0612 w0390 w1593 w0082 w1191 w1259 w0082")

	words, err := testWordlist(t).Encode(seedBytes())
	require.NoError(t, err)
	require.Equal(t, want, words)
}
