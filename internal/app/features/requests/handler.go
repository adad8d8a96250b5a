// Package requests exposes the donation-request HTTP surface: creation,
// the requester's own listing, the admin search pool, guarded status
// transitions, and deletion.
package requests

import (
	requeststore "github.com/lifelinkhq/lifelink/internal/app/store/requests"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for the donation-request endpoints.
type Handler struct {
	Store *requeststore.Store
	Log   *zap.Logger
}

// NewHandler constructs a requests Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: requeststore.New(db),
		Log:   logger,
	}
}
