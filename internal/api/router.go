package api

import (
	"errors"
	"net/http"

	"github.com/AlexZinkM/gem/internal/handler"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter(cardHandler *handler.CardHandler) (http.Handler, error) {
	if cardHandler == nil {
		return nil, errors.New("card handler not set")
	}

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Card endpoints
	mux.HandleFunc("/card/state", cardHandler.State)
	mux.HandleFunc("/card/preview", cardHandler.Preview)
	mux.HandleFunc("/card/generate", cardHandler.Generate)
	mux.HandleFunc("/card/qr", cardHandler.UpdateQR)
	mux.HandleFunc("/card/mode", cardHandler.SetMode)
	mux.HandleFunc("/card/fields", cardHandler.UpdateFields)
	mux.HandleFunc("/card/market", cardHandler.RefreshMarket)
	mux.HandleFunc("/card/save", cardHandler.Save)

	return mux, nil
}
