// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	healthfeature "github.com/lifelinkhq/lifelink/internal/app/features/health"
	paymentsfeature "github.com/lifelinkhq/lifelink/internal/app/features/payments"
	requestsfeature "github.com/lifelinkhq/lifelink/internal/app/features/requests"
	usersfeature "github.com/lifelinkhq/lifelink/internal/app/features/users"
	"github.com/lifelinkhq/lifelink/internal/app/payment"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// LifeLink mounts the donation-request routes for requesters, the admin
// surface for moderation, the Stripe checkout endpoints, and account
// management.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.LifeLinkMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Donation requests: requester surface and admin surface share one
	// handler; the admin routes expose search, transition, and delete.
	requestsHandler := requestsfeature.NewHandler(deps.LifeLinkMongoDatabase, logger)
	r.Mount("/donation-requests", requestsfeature.Routes(requestsHandler))
	r.Mount("/donation-request-all", requestsfeature.AdminRoutes(requestsHandler))

	// Stripe checkout and payment reconciliation
	provider := payment.NewStripe(
		appCfg.StripeSecretKey,
		appCfg.StripeCurrency,
		appCfg.CheckoutSuccessURL,
		appCfg.CheckoutCancelURL,
	)
	paymentsHandler := paymentsfeature.NewHandler(deps.LifeLinkMongoDatabase, provider, logger)
	paymentsfeature.Register(r, paymentsHandler)

	// Account management
	usersHandler := usersfeature.NewHandler(deps.LifeLinkMongoDatabase, logger)
	r.Mount("/users", usersfeature.Routes(usersHandler))

	return r, nil
}
