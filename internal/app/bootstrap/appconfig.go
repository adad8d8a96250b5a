// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for LifeLink.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, logging, CORS); AppConfig is
// everything specific to this application: the MongoDB connection, the
// Stripe account, and the checkout redirect targets.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max pooled connections
	MongoMinPoolSize uint64 // Min pooled connections

	// Payment provider configuration
	StripeSecretKey string // Stripe secret API key
	StripeCurrency  string // Fixed checkout currency (e.g., "usd")

	// Where Stripe redirects the payer after checkout
	CheckoutSuccessURL string
	CheckoutCancelURL  string

	// Base URL of this deployment, used in redirect defaults
	BaseURL string
}
