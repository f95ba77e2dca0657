package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/jameszjgao/vouchap-crm/internal/config"
	"github.com/jameszjgao/vouchap-crm/internal/observability"
	"github.com/jameszjgao/vouchap-crm/internal/rbac"
)

// App bundles everything main needs to run and to shut down in order.
type App struct {
	Config        *config.Config
	Logger        *slog.Logger
	Server        *http.Server
	Observability *observability.Runtime
	DB            *gorm.DB
	Redis         redis.UniversalClient
}

// New wires the refresh signal into the session registry: any permission
// save, locally or on a peer instance, re-resolves every live session.
func New(
	cfg *config.Config,
	logger *slog.Logger,
	server *http.Server,
	runtime *observability.Runtime,
	db *gorm.DB,
	redisClient redis.UniversalClient,
	broadcaster rbac.Broadcaster,
	registry *rbac.SessionRegistry,
) *App {
	broadcaster.Subscribe(context.Background(), registry.RefreshAll)
	return &App{
		Config:        cfg,
		Logger:        logger,
		Server:        server,
		Observability: runtime,
		DB:            db,
		Redis:         redisClient,
	}
}
