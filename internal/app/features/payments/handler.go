// Package payments exposes the fund-contribution HTTP surface: creating
// hosted checkout sessions and reconciling completed sessions into fund
// records exactly once.
package payments

import (
	"github.com/lifelinkhq/lifelink/internal/app/payment"
	fundstore "github.com/lifelinkhq/lifelink/internal/app/store/funds"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for the payment endpoints.
type Handler struct {
	Funds    *fundstore.Store
	Provider payment.Provider
	Log      *zap.Logger
}

// NewHandler constructs a payments Handler.
func NewHandler(db *mongo.Database, provider payment.Provider, logger *zap.Logger) *Handler {
	return &Handler{
		Funds:    fundstore.New(db),
		Provider: provider,
		Log:      logger,
	}
}
