package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/AlexZinkM/gem/internal/card"
	"github.com/AlexZinkM/gem/internal/client"
	"github.com/AlexZinkM/gem/internal/config"
	"github.com/AlexZinkM/gem/internal/export"
	"github.com/AlexZinkM/gem/internal/market"
	"github.com/AlexZinkM/gem/internal/monero"
	"github.com/AlexZinkM/gem/internal/session"
	"github.com/AlexZinkM/gem/internal/wallet"
)

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid GEM_LOG_LEVEL: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = lvl
	return zc.Build()
}

// newSession loads the card assets and wires every collaborator of a session.
// offline skips the advisory market lookups.
func newSession(cfg *config.Config, logger *zap.Logger, offline bool) (*session.Session, error) {
	tpl, err := card.LoadTemplate(cfg.TemplatePath)
	if err != nil {
		return nil, err
	}
	font, err := card.LoadFont(cfg.FontPath)
	if err != nil {
		return nil, err
	}

	wl, err := monero.LoadWordlist(cfg.WordlistPath, monero.EnglishPrefixLen)
	if err != nil {
		return nil, err
	}
	deriver := monero.NewDeriver(nil)
	deriver.AddWordlist(monero.LanguageEnglish, wl)

	deps := session.Deps{
		Credentials: wallet.NewGenerator(deriver),
		Template:    tpl,
		Font:        font,
		Sink:        export.NewFileSink(cfg.ExportDir, cfg.JPEGQuality),
		Logger:      logger,
	}
	if !offline {
		deps.Market = market.NewSnapshot(
			client.NewNodeClient(cfg.NodeRPCURL, cfg.HTTPTimeout),
			client.NewCoinGeckoClient(cfg.PriceAPIURL, cfg.HTTPTimeout),
			cfg.PriceAssetID, cfg.FiatCode, cfg.HeightMargin, logger,
		)
	}

	state, err := session.NewState(session.Defaults{
		Amount:    cfg.DefaultAmount,
		UnitPrice: cfg.DefaultUnitPrice,
		Height:    cfg.DefaultHeight,
		FiatCode:  cfg.FiatCode,
	}, time.Now())
	if err != nil {
		return nil, err
	}
	return session.New(state, deps)
}
