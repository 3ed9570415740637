package wallet

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeDeriver struct {
	failAt string
	calls  []string
}

var errRejected = errors.New("rejected")

func (f *fakeDeriver) step(name string) error {
	f.calls = append(f.calls, name)
	if f.failAt == name {
		return errRejected
	}
	return nil
}

func (f *fakeDeriver) GenerateSeed(language, kind string) ([]string, error) {
	if err := f.step("seed"); err != nil {
		return nil, err
	}
	return []string{language, kind, "word"}, nil
}

func (f *fakeDeriver) DeriveHexSeed(words []string) (string, error) {
	return fmt.Sprintf("hex(%d)", len(words)), f.step("hex")
}

func (f *fakeDeriver) DerivePrivKeys(hexSeed string) (string, string, error) {
	return "spend:" + hexSeed, "view:" + hexSeed, f.step("priv")
}

func (f *fakeDeriver) DerivePubKey(privKey string) (string, error) {
	return "pub(" + privKey + ")", f.step("pub:" + privKey[:4])
}

func (f *fakeDeriver) DeriveAddress(pubSpend, pubView string, network int) (string, error) {
	return fmt.Sprintf("%s|%s|%d", pubSpend, pubView, network), f.step("addr")
}

func TestGenerateRunsEveryStep(t *testing.T) {
	deriver := &fakeDeriver{}
	creds, err := NewGenerator(deriver).Generate()
	require.NoError(t, err)
	require.Equal(t, []string{"en", "original", "word"}, creds.SeedPhrase)
	require.Equal(t, "pub(spend:hex(3))|pub(view:hex(3))|0", creds.Address)
	require.Equal(t, []string{"seed", "hex", "priv", "pub:spen", "pub:view", "addr"}, deriver.calls)
}

func TestGenerateStopsAtFirstFailure(t *testing.T) {
	for _, step := range []string{"seed", "hex", "priv", "pub:spen", "pub:view", "addr"} {
		t.Run(step, func(t *testing.T) {
			deriver := &fakeDeriver{failAt: step}
			creds, err := NewGenerator(deriver).Generate()
			require.Error(t, err)
			require.True(t, IsCredentialError(err))
			require.ErrorIs(t, err, errRejected)
			require.Equal(t, Credentials{}, creds)
			require.Equal(t, step, deriver.calls[len(deriver.calls)-1])
		})
	}
}
