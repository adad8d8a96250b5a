// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/lifelinkhq/lifelink/internal/app/system/indexes"
	"go.uber.org/zap"
)

// EnsureSchema sets up indexes or schema as needed.
//
// LifeLink relies on a unique index on fund transaction ids for payment
// idempotency, so index creation must succeed before the app serves
// traffic.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return indexes.EnsureAll(ctx, deps.LifeLinkMongoDatabase)
}
