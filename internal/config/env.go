package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
type Config struct {
	Port             string        `envconfig:"PORT" default:"8080"`
	NodeRPCURL       string        `envconfig:"GEM_NODE_RPC_URL" default:"http://xmr-node.cakewallet.com:18081/json_rpc"`
	PriceAPIURL      string        `envconfig:"GEM_PRICE_API_URL" default:"https://api.coingecko.com/api/v3"`
	PriceAssetID     string        `envconfig:"GEM_PRICE_ASSET_ID" default:"monero"`
	FiatCode         string        `envconfig:"GEM_FIAT_CODE" default:"usd"`
	HTTPTimeout      time.Duration `envconfig:"GEM_HTTP_TIMEOUT" default:"15s"`
	HeightMargin     uint64        `envconfig:"GEM_HEIGHT_MARGIN" default:"1000"`
	TemplatePath     string        `envconfig:"GEM_TEMPLATE_PATH" required:"true"`
	FontPath         string        `envconfig:"GEM_FONT_PATH" required:"true"`
	WordlistPath     string        `envconfig:"GEM_WORDLIST_PATH" required:"true"`
	ExportDir        string        `envconfig:"GEM_EXPORT_DIR" default:"."`
	JPEGQuality      int           `envconfig:"GEM_JPEG_QUALITY" default:"95"`
	DefaultAmount    string        `envconfig:"GEM_DEFAULT_AMOUNT" default:"1"`
	DefaultUnitPrice float64       `envconfig:"GEM_DEFAULT_UNIT_PRICE" default:"150"`
	DefaultHeight    uint64        `envconfig:"GEM_DEFAULT_HEIGHT" default:"3000000"`
	LogLevel         string        `envconfig:"GEM_LOG_LEVEL" default:"info"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	loaded, err := Load()
	if err != nil {
		return err
	}
	cfg = loaded
	return nil
}

// Load reads a fresh Config from the environment without touching the global instance.
func Load() (*Config, error) {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return nil, fmt.Errorf("GEM_JPEG_QUALITY must be within 1..100, got %d", c.JPEGQuality)
	}
	c.PriceAssetID = strings.ToLower(c.PriceAssetID)
	c.FiatCode = strings.ToLower(c.FiatCode)
	return c, nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetExportDir returns the directory saved cards are written to
func GetExportDir() string {
	return Get().ExportDir
}

// GetJPEGQuality returns the JPEG quality used for exported cards
func GetJPEGQuality() int {
	return Get().JPEGQuality
}

// PromptForSeed reads a seed phrase from the terminal without echo.
// An empty answer is allowed: imported cards may carry an address only.
func PromptForSeed() (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("stdin is not a terminal: run interactively to enter the seed")
	}
	fmt.Fprint(os.Stderr, "Enter seed phrase (leave empty for none): ")
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("failed to read seed: %w", err)
	}
	seed := strings.Join(strings.Fields(string(raw)), " ")
	clear(raw)
	return seed, nil
}
