package redeem

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const address = "48edfHu7V9Z84YzzMa6fUueoELZ9ZRXq9VetWzYGzKt52XU5xvqgzYnDK9URnRoJMk1j8nLwEVsaSWJ4fhdUyZijBGUicoD"

func abbeySeed() []string {
	seed := make([]string, 25)
	for i := range seed {
		seed[i] = "abbey"
	}
	return seed
}

func TestEncodeExampleScenario(t *testing.T) {
	uri := Encode(Params{Address: address, Seed: abbeySeed(), Height: 3000000})
	want := "monero_wallet:" + address + "?seed=" + strings.TrimSuffix(strings.Repeat("abbey%20", 25), "%20") + "&height=3000000"
	require.Equal(t, want, uri)
}

func TestEncodeParameterOrderAndTxIDs(t *testing.T) {
	uri := Encode(Params{Address: "addr", Seed: []string{"a", "b"}, Height: 7, TxIDs: []string{"t 1", "t2", " "}})
	require.Equal(t, "monero_wallet:addr?seed=a%20b&height=7&txids=t1,t2", uri)
}

func TestEncodeOmitsUnsetParameters(t *testing.T) {
	cases := []struct {
		name   string
		params Params
		want   string
	}{
		{"nothing", Params{Address: "addr"}, "monero_wallet:addr"},
		{"no seed", Params{Address: "addr", Height: 5}, "monero_wallet:addr?height=5"},
		{"zero height", Params{Address: "addr", Seed: []string{"x"}}, "monero_wallet:addr?seed=x"},
		{"txids only", Params{Address: "addr", TxIDs: []string{"ab"}}, "monero_wallet:addr?txids=ab"},
		{"empty txids", Params{Address: "addr", Seed: []string{"x"}, TxIDs: []string{}}, "monero_wallet:addr?seed=x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uri := Encode(tc.params)
			require.Equal(t, tc.want, uri)
			require.NotContains(t, uri, "seed=&")
			require.False(t, strings.HasSuffix(uri, "="))
		})
	}
	require.NotContains(t, Encode(Params{Address: "addr", Height: 0}), "height=")
	require.NotContains(t, Encode(Params{Address: "addr", TxIDs: nil}), "txids=")
}

func TestParseReversesEncode(t *testing.T) {
	inputs := []Params{
		{Address: address, Seed: abbeySeed(), Height: 3000000},
		{Address: address, Seed: []string{"one", "two", "three"}, Height: 1, TxIDs: []string{"aa", "bb"}},
		{Address: address, Seed: make13()},
		{Address: address},
		{Address: address, TxIDs: []string{"deadbeef"}},
	}
	for _, in := range inputs {
		got, err := Parse(Encode(in))
		require.NoError(t, err)
		require.Equal(t, in.Address, got.Address)
		require.Equal(t, len(in.Seed), len(got.Seed))
		if len(in.Seed) > 0 {
			require.Equal(t, in.Seed, got.Seed)
		}
		require.Equal(t, in.Height, got.Height)
		if len(in.TxIDs) > 0 {
			require.Equal(t, in.TxIDs, got.TxIDs)
		} else {
			require.Empty(t, got.TxIDs)
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, uri := range []string{"bitcoin:abc", "monero_wallet:", "monero_wallet:?seed=a", "monero_wallet:a?height=x"} {
		_, err := Parse(uri)
		require.ErrorIs(t, err, ErrMalformed, uri)
	}
}

func TestAddressURIIsVerbatim(t *testing.T) {
	require.Equal(t, address, AddressURI(address))
}

func make13() []string {
	seed := make([]string, 13)
	for i := range seed {
		seed[i] = string(rune('a' + i))
	}
	return seed
}
