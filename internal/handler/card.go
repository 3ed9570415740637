package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/AlexZinkM/gem/internal/card"
	"github.com/AlexZinkM/gem/internal/export"
	"github.com/AlexZinkM/gem/internal/model"
	"github.com/AlexZinkM/gem/internal/qr"
	"github.com/AlexZinkM/gem/internal/session"
	"github.com/AlexZinkM/gem/internal/wallet"
)

const dateLayout = "2006-01-02"

// CardHandler exposes one card session over HTTP
type CardHandler struct {
	session *session.Session
	logger  *zap.Logger
}

// NewCardHandler creates a new CardHandler
func NewCardHandler(s *session.Session, logger *zap.Logger) (*CardHandler, error) {
	if s == nil {
		return nil, errors.New("card session not set")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CardHandler{session: s, logger: logger}, nil
}

// State handles GET /card/state
// @Summary      Get card state
// @Description  Returns every field of the card and the URIs its QR codes encode
// @Tags         card
// @Produce      json
// @Success      200  {object}  model.CardStateResponse
// @Router       /card/state [get]
func (h *CardHandler) State(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse(h.session.Card()))
}

// Preview handles GET /card/preview
// @Summary      Preview card
// @Description  Renders the current card as PNG
// @Tags         card
// @Produce      png
// @Success      200
// @Failure      409  {object}  model.ErrorResponse
// @Failure      500  {object}  model.ErrorResponse
// @Router       /card/preview [get]
func (h *CardHandler) Preview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	rc, err := h.session.Render()
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if err := imaging.Encode(w, card.Flatten(rc.Image), imaging.PNG); err != nil {
		h.logger.Error("failed to write preview", zap.Error(err))
	}
}

// Generate handles POST /card/generate
// @Summary      Generate new wallet
// @Description  Replaces the wallet on a card in generated mode and redraws both QR codes
// @Tags         card
// @Produce      json
// @Success      200  {object}  model.GenerateResponse
// @Failure      409  {object}  model.ErrorResponse
// @Failure      500  {object}  model.ErrorResponse
// @Router       /card/generate [post]
func (h *CardHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	if err := h.session.Generate(); err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success: true,
		Message: "Wallet generated successfully",
		Address: h.session.Card().State.Address,
	})
}

// UpdateQR handles POST /card/qr
// @Summary      Update QR codes
// @Description  Redraws both QR codes from the current address, seed, height and transaction ids
// @Tags         card
// @Produce      json
// @Success      200  {object}  model.GenerateResponse
// @Failure      400  {object}  model.ErrorResponse
// @Failure      409  {object}  model.ErrorResponse
// @Failure      422  {object}  model.ErrorResponse
// @Router       /card/qr [post]
func (h *CardHandler) UpdateQR(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	if err := h.session.UpdateQR(); err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success: true,
		Message: "QR codes updated",
		Address: h.session.Card().State.Address,
	})
}

// SetMode handles POST /card/mode
// @Summary      Switch mode
// @Description  Switches between generated and imported wallets. Both QR codes are cleared.
// @Tags         card
// @Accept       json
// @Produce      json
// @Param        request  body      model.ModeRequest  true  "Target mode"
// @Success      200      {object}  model.CardStateResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /card/mode [post]
func (h *CardHandler) SetMode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Code: "bad_request"})
		return
	}

	if err := h.session.SetMode(r.Context(), req.Mode); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse(h.session.Card()))
}

// UpdateFields handles POST /card/fields
// @Summary      Edit card fields
// @Description  Applies a partial edit. Generated cards reject address, seed, height, price and date.
// @Tags         card
// @Accept       json
// @Produce      json
// @Param        request  body      model.FieldsRequest  true  "Fields to change"
// @Success      200      {object}  model.CardStateResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Router       /card/fields [post]
func (h *CardHandler) UpdateFields(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.FieldsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Code: "bad_request"})
		return
	}

	edit := session.Edit{
		Amount:      req.Amount,
		UnitPrice:   req.UnitPrice,
		BlockHeight: req.BlockHeight,
		Message:     req.Message,
		Sender:      req.Sender,
		Recipient:   req.Recipient,
		Contact:     req.Contact,
		TxIDs:       req.TransactionIDs,
		Address:     req.Address,
		Seed:        req.Seed,
	}
	if req.IssueDate != nil {
		t, err := time.ParseInLocation(dateLayout, *req.IssueDate, time.Local)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
				Error: "invalid issue_date: use YYYY-MM-DD (e.g. 2006-01-02)",
				Code:  "bad_request",
			})
			return
		}
		edit.IssueDate = &t
	}

	if err := h.session.Edit(edit); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse(h.session.Card()))
}

// RefreshMarket handles POST /card/market
// @Summary      Refresh market data
// @Description  Fetches block height and unit price. Lookups that fail keep the previous values.
// @Tags         card
// @Produce      json
// @Success      200  {object}  model.CardStateResponse
// @Failure      409  {object}  model.ErrorResponse
// @Router       /card/market [post]
func (h *CardHandler) RefreshMarket(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	if err := h.session.RefreshMarket(r.Context()); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse(h.session.Card()))
}

// Save handles POST /card/save
// @Summary      Save card
// @Description  Exports the current card as JPEG into the export directory
// @Tags         card
// @Produce      json
// @Success      200  {object}  model.SaveResponse
// @Failure      409  {object}  model.ErrorResponse
// @Failure      500  {object}  model.ErrorResponse
// @Router       /card/save [post]
func (h *CardHandler) Save(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	path, err := h.session.Save()
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.SaveResponse{Success: true, Path: path})
}

func stateResponse(c session.Card) model.CardStateResponse {
	s := c.State
	redemption, address := session.URIs(s)
	return model.CardStateResponse{
		Mode:           s.Mode,
		Address:        s.Address,
		SeedPhrase:     s.SeedPhrase,
		AmountXMR:      s.AmountXMR(),
		UnitPrice:      s.UnitPrice,
		FiatCode:       s.FiatCode,
		TotalFiat:      s.TotalFiat(),
		BlockHeight:    s.BlockHeight,
		IssueDate:      s.IssueDate.Format(dateLayout),
		Message:        s.Message,
		Sender:         s.Sender,
		Recipient:      s.Recipient,
		Contact:        s.Contact,
		TransactionIDs: s.TransactionIDs,
		RedemptionURI:  redemption,
		AddressURI:     address,
		HasQRCodes:     c.QRMain != nil && c.QRAddr != nil,
	}
}

// statusFor maps session errors to an HTTP status and a stable error code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, session.ErrWrongMode):
		return http.StatusConflict, "wrong_mode"
	case errors.Is(err, session.ErrReadOnlyField):
		return http.StatusConflict, "read_only"
	case errors.Is(err, session.ErrMissingQR):
		return http.StatusConflict, "missing_qr"
	case errors.Is(err, session.ErrUnknownMode),
		errors.Is(err, session.ErrInvalidAmount),
		errors.Is(err, session.ErrInvalidPrice),
		errors.Is(err, session.ErrEmptyAddress):
		return http.StatusBadRequest, "invalid_input"
	case errors.Is(err, qr.ErrTooLarge), errors.Is(err, qr.ErrEmpty):
		return http.StatusUnprocessableEntity, "qr_capacity"
	case errors.Is(err, wallet.ErrCredential):
		return http.StatusInternalServerError, "credential_error"
	case errors.Is(err, export.ErrIO):
		return http.StatusInternalServerError, "io_error"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func (h *CardHandler) writeError(w http.ResponseWriter, err error) {
	status, code := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("code", code), zap.Error(err))
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
