// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for LifeLink.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, stripe_secret_key, etc.
//   - Environment variables: LIFELINK_MONGO_URI, LIFELINK_STRIPE_SECRET_KEY, etc.
//   - Command-line flags: --mongo_uri, --stripe_secret_key, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "lifelink", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Payment provider
	{Name: "stripe_secret_key", Default: "", Desc: "Stripe secret API key"},
	{Name: "stripe_currency", Default: "usd", Desc: "Checkout currency (single fixed currency)"},
	{Name: "checkout_success_url", Default: "", Desc: "Redirect URL after a successful checkout"},
	{Name: "checkout_cancel_url", Default: "", Desc: "Redirect URL after a cancelled checkout"},

	// Base URL for redirect defaults
	{Name: "base_url", Default: "http://localhost:3000", Desc: "Base URL of this deployment"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "LIFELINK", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		StripeSecretKey: appValues.String("stripe_secret_key"),
		StripeCurrency:  appValues.String("stripe_currency"),

		CheckoutSuccessURL: appValues.String("checkout_success_url"),
		CheckoutCancelURL:  appValues.String("checkout_cancel_url"),

		BaseURL: appValues.String("base_url"),
	}

	// Default the checkout redirects off the base URL so a minimal
	// config still produces a working checkout flow.
	if appCfg.CheckoutSuccessURL == "" {
		appCfg.CheckoutSuccessURL = appCfg.BaseURL + "/payment/success"
	}
	if appCfg.CheckoutCancelURL == "" {
		appCfg.CheckoutCancelURL = appCfg.BaseURL + "/payment/cancel"
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// LifeLink validates the MongoDB URI format and requires a Stripe key so
// configuration errors surface before any connection is attempted.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.StripeSecretKey == "" {
		return fmt.Errorf("stripe_secret_key must be set")
	}
	if appCfg.StripeCurrency == "" {
		return fmt.Errorf("stripe_currency must be set")
	}

	return nil
}
