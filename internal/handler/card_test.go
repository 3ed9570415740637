package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/AlexZinkM/gem/internal/card"
	"github.com/AlexZinkM/gem/internal/export"
	"github.com/AlexZinkM/gem/internal/model"
	"github.com/AlexZinkM/gem/internal/session"
	"github.com/AlexZinkM/gem/internal/wallet"
)

const testAddress = "48edfHu7V9Z84YzzMa6fUueoELZ9ZRXq9VetWzYGzKt52XU5xvqgzYnDK9URnRoJMk1j8nLwEVsaSWJ4fhdUyZijBGUicoD"

type fixedCredentials struct {
	err error
}

func (f fixedCredentials) Generate() (wallet.Credentials, error) {
	if f.err != nil {
		return wallet.Credentials{}, f.err
	}
	return wallet.Credentials{SeedPhrase: []string{"abbey", "ace", "acid"}, Address: testAddress}, nil
}

func newTestHandler(t *testing.T, creds session.CredentialSource) (*CardHandler, string) {
	t.Helper()
	tpl, err := card.NewTemplate(imaging.New(1000, 600, color.NRGBA{250, 250, 250, 255}))
	require.NoError(t, err)
	ff, err := card.ParseFont(goregular.TTF)
	require.NoError(t, err)

	dir := t.TempDir()
	state, err := session.NewState(session.Defaults{Amount: "1", UnitPrice: 150, Height: 3000000, FiatCode: "usd"},
		time.Date(2024, 12, 24, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	s, err := session.New(state, session.Deps{
		Credentials: creds,
		Template:    tpl,
		Font:        ff,
		Sink:        export.NewFileSink(dir, 90),
		Now:         func() time.Time { return time.Date(2024, 12, 24, 18, 30, 0, 0, time.UTC) },
	})
	require.NoError(t, err)

	h, err := NewCardHandler(s, nil)
	require.NoError(t, err)
	return h, dir
}

func do(t *testing.T, fn http.HandlerFunc, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	fn(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestGenerateAndState(t *testing.T) {
	h, _ := newTestHandler(t, fixedCredentials{})

	rec := do(t, h.Generate, http.MethodPost, "/card/generate", "")
	require.Equal(t, http.StatusOK, rec.Code)
	gen := decode[model.GenerateResponse](t, rec)
	require.True(t, gen.Success)
	require.Equal(t, testAddress, gen.Address)

	rec = do(t, h.State, http.MethodGet, "/card/state", "")
	require.Equal(t, http.StatusOK, rec.Code)
	state := decode[model.CardStateResponse](t, rec)
	require.Equal(t, model.ModeGenerated, state.Mode)
	require.Equal(t, "1", state.AmountXMR)
	require.Equal(t, "150.00", state.TotalFiat)
	require.Equal(t, "2024-12-24", state.IssueDate)
	require.Equal(t, "monero_wallet:"+testAddress+"?seed=abbey%20ace%20acid&height=3000000", state.RedemptionURI)
	require.Equal(t, testAddress, state.AddressURI)
	require.True(t, state.HasQRCodes)
}

func TestGenerateCredentialFailure(t *testing.T) {
	h, _ := newTestHandler(t, fixedCredentials{err: errors.Join(wallet.ErrCredential, errors.New("boom"))})

	rec := do(t, h.Generate, http.MethodPost, "/card/generate", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "credential_error", decode[model.ErrorResponse](t, rec).Code)
}

func TestMethodNotAllowed(t *testing.T) {
	h, _ := newTestHandler(t, fixedCredentials{})
	require.Equal(t, http.StatusMethodNotAllowed, do(t, h.Generate, http.MethodGet, "/card/generate", "").Code)
	require.Equal(t, http.StatusMethodNotAllowed, do(t, h.State, http.MethodPost, "/card/state", "").Code)
}

func TestFieldsReadOnlyInGeneratedMode(t *testing.T) {
	h, _ := newTestHandler(t, fixedCredentials{})

	rec := do(t, h.UpdateFields, http.MethodPost, "/card/fields", `{"address":"4abc"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "read_only", decode[model.ErrorResponse](t, rec).Code)

	rec = do(t, h.UpdateFields, http.MethodPost, "/card/fields", `{"message":"Happy Birthday","amount":"0.5"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	state := decode[model.CardStateResponse](t, rec)
	require.Equal(t, "Happy Birthday", state.Message)
	require.Equal(t, "0.5", state.AmountXMR)
}

func TestImportedFlow(t *testing.T) {
	h, _ := newTestHandler(t, fixedCredentials{})

	rec := do(t, h.SetMode, http.MethodPost, "/card/mode", `{"mode":"imported"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.False(t, decode[model.CardStateResponse](t, rec).HasQRCodes)

	rec = do(t, h.UpdateQR, http.MethodPost, "/card/qr", "")
	require.Equal(t, http.StatusBadRequest, rec.Code, "empty address")

	body := `{"address":"` + testAddress + `","seed":"one two","txids":"aa, bb","block_height":2900000,"issue_date":"2025-01-02"}`
	rec = do(t, h.UpdateFields, http.MethodPost, "/card/fields", body)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h.UpdateQR, http.MethodPost, "/card/qr", "")
	require.Equal(t, http.StatusOK, rec.Code)

	state := decode[model.CardStateResponse](t, do(t, h.State, http.MethodGet, "/card/state", ""))
	require.Equal(t, "monero_wallet:"+testAddress+"?seed=one%20two&height=2900000&txids=aa,bb", state.RedemptionURI)
	require.Equal(t, "2025-01-02", state.IssueDate)
	require.True(t, state.HasQRCodes)

	rec = do(t, h.Generate, http.MethodPost, "/card/generate", "")
	require.Equal(t, http.StatusConflict, rec.Code)
	rec = do(t, h.RefreshMarket, http.MethodPost, "/card/market", "")
	require.Equal(t, http.StatusOK, rec.Code, "no market source configured")
}

func TestBadRequests(t *testing.T) {
	h, _ := newTestHandler(t, fixedCredentials{})

	require.Equal(t, http.StatusBadRequest, do(t, h.SetMode, http.MethodPost, "/card/mode", `{"mode":"auto"}`).Code)
	require.Equal(t, http.StatusBadRequest, do(t, h.SetMode, http.MethodPost, "/card/mode", `{`).Code)
	require.Equal(t, http.StatusBadRequest, do(t, h.UpdateFields, http.MethodPost, "/card/fields", `{"amount":"nope"}`).Code)

	do(t, h.SetMode, http.MethodPost, "/card/mode", `{"mode":"imported"}`)
	require.Equal(t, http.StatusBadRequest, do(t, h.UpdateFields, http.MethodPost, "/card/fields", `{"issue_date":"24/12/2024"}`).Code)
}

func TestPreviewAndSave(t *testing.T) {
	h, dir := newTestHandler(t, fixedCredentials{})
	do(t, h.Generate, http.MethodPost, "/card/generate", "")

	rec := do(t, h.Preview, http.MethodGet, "/card/preview", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 1000, 600), img.Bounds())

	rec = do(t, h.Save, http.MethodPost, "/card/save", "")
	require.Equal(t, http.StatusOK, rec.Code)
	saved := decode[model.SaveResponse](t, rec)
	require.Equal(t, filepath.Join(dir, "gem-wallet-24-12-2024-18-30.jpg"), saved.Path)
	_, err = os.Stat(saved.Path)
	require.NoError(t, err)
}

func TestStatusFor(t *testing.T) {
	status, code := statusFor(errors.Join(export.ErrIO, errors.New("disk full")))
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, "io_error", code)

	status, _ = statusFor(errors.New("other"))
	require.Equal(t, http.StatusInternalServerError, status)
}

func TestPreviewAndSaveNeedQRCodes(t *testing.T) {
	h, dir := newTestHandler(t, fixedCredentials{})

	rec := do(t, h.Preview, http.MethodGet, "/card/preview", "")
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "missing_qr", decode[model.ErrorResponse](t, rec).Code)

	do(t, h.Generate, http.MethodPost, "/card/generate", "")
	do(t, h.SetMode, http.MethodPost, "/card/mode", `{"mode":"imported"}`)
	do(t, h.SetMode, http.MethodPost, "/card/mode", `{"mode":"generated"}`)

	rec = do(t, h.Save, http.MethodPost, "/card/save", "")
	require.Equal(t, http.StatusConflict, rec.Code)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)

	require.Equal(t, http.StatusOK, do(t, h.UpdateQR, http.MethodPost, "/card/qr", "").Code)
	require.Equal(t, http.StatusOK, do(t, h.Save, http.MethodPost, "/card/save", "").Code)
}
