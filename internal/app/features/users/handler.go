// Package users exposes account CRUD for donors, admins, and
// volunteers. Accounts are simple keyed records; unlike donation
// requests they carry no state machine.
package users

import (
	userstore "github.com/lifelinkhq/lifelink/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for the user endpoints.
type Handler struct {
	Store *userstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a users Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: userstore.New(db),
		Log:   logger,
	}
}
