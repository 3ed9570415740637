package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTruncateCountsRunes(t *testing.T) {
	require.Equal(t, "héllo", Truncate("héllo wörld", 5))
	require.Equal(t, "short", Truncate("short", SenderMaxLen))
}

func TestParseTxIDs(t *testing.T) {
	require.Equal(t, []string{"aa", "bb", "cc"}, ParseTxIDs(" aa, b b ,,cc "))
	require.Nil(t, ParseTxIDs(" , "))

	long := strings.Repeat("a", TxIDsMaxLen+10)
	ids := ParseTxIDs(long)
	require.Len(t, ids, 1)
	require.Len(t, ids[0], TxIDsMaxLen)
}

func TestParseSeed(t *testing.T) {
	require.Equal(t, []string{"abbey", "ace", "acid"}, ParseSeed("  abbey ace   acid "))
	require.Empty(t, ParseSeed("   "))
}

func TestCloneDoesNotShareSlices(t *testing.T) {
	state := GiftCardState{
		SeedPhrase:     []string{"a", "b"},
		TransactionIDs: []string{"x"},
		IssueDate:      time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	clone := state.Clone()
	clone.SeedPhrase[0] = "z"
	clone.TransactionIDs[0] = "y"
	require.Equal(t, "a", state.SeedPhrase[0])
	require.Equal(t, "x", state.TransactionIDs[0])
}

func TestTotalFiatIsSeparateFromUnitPrice(t *testing.T) {
	state := GiftCardState{Amount: 2_000_000_000_000, UnitPrice: 150}
	require.Equal(t, "300.00", state.TotalFiat())
	require.Equal(t, "2", state.AmountXMR())
}

func TestModeValid(t *testing.T) {
	require.True(t, ModeGenerated.Valid())
	require.True(t, ModeImported.Valid())
	require.False(t, Mode("manual").Valid())
}

func TestDateOfDropsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	got := DateOf(time.Date(2024, 12, 24, 23, 59, 59, 5, loc))
	require.Equal(t, time.Date(2024, 12, 24, 0, 0, 0, 0, loc), got)
}
