package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/buddywhitman/foodswipe-sub000/internal/pricing"
)

// Config holds CLI configuration.
type Config struct {
	DataDir   string
	CachePath string
	LogPath   string
	StatePath string
	APIBase   string
	Offline   bool
	Policy    pricing.Policy
}

// ParseFlags parses command-line flags and returns configuration.
func ParseFlags() (*Config, error) {
	// Load .env files first so env-based defaults work with flag parsing.
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	config := &Config{Policy: pricing.DefaultPolicy()}

	var dataDir string
	flag.StringVar(&dataDir, "data", "", "Data directory (default: ~/.foodswipe)")
	flag.StringVar(&config.APIBase, "api", "", "Catalog API base URL (or set FOODSWIPE_API env var)")
	flag.BoolVar(&config.Offline, "offline", false, "Skip remote fetches; use cached/built-in data")
	flag.IntVar(&config.Policy.FreeDeliveryOver, "free-delivery-over", config.Policy.FreeDeliveryOver, "Subtotal above which delivery is free")
	flag.IntVar(&config.Policy.DeliveryFee, "delivery-fee", config.Policy.DeliveryFee, "Flat delivery fee below the free-delivery threshold")
	flag.IntVar(&config.Policy.PlatformFee, "platform-fee", config.Policy.PlatformFee, "Flat platform fee per order")
	taxRate := flag.Float64("tax-rate", 0, "Tax rate applied to the discounted subtotal (default 0.05)")
	flag.Parse()

	if config.APIBase == "" {
		config.APIBase = os.Getenv("FOODSWIPE_API")
	}
	if config.APIBase == "" {
		config.Offline = true
	}
	if *taxRate > 0 {
		config.Policy.TaxRate = decimal.NewFromFloat(*taxRate)
	} else if env := os.Getenv("FOODSWIPE_TAX_RATE"); env != "" {
		rate, err := strconv.ParseFloat(env, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid FOODSWIPE_TAX_RATE: %w", err)
		}
		config.Policy.TaxRate = decimal.NewFromFloat(rate)
	}

	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".foodswipe")
	}
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	config.DataDir = dataDir
	config.CachePath = filepath.Join(dataDir, "cache.db")
	config.LogPath = filepath.Join(dataDir, "foodswipe.log")
	config.StatePath = filepath.Join(dataDir, "session.json")

	return config, nil
}
