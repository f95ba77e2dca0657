package di

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/jameszjgao/vouchap-crm/internal/app"
	"github.com/jameszjgao/vouchap-crm/internal/config"
	"github.com/jameszjgao/vouchap-crm/internal/database"
	"github.com/jameszjgao/vouchap-crm/internal/health"
	"github.com/jameszjgao/vouchap-crm/internal/http/handler"
	"github.com/jameszjgao/vouchap-crm/internal/http/middleware"
	"github.com/jameszjgao/vouchap-crm/internal/http/router"
	"github.com/jameszjgao/vouchap-crm/internal/observability"
	"github.com/jameszjgao/vouchap-crm/internal/prefs"
	"github.com/jameszjgao/vouchap-crm/internal/rbac"
	"github.com/jameszjgao/vouchap-crm/internal/repository"
	"github.com/jameszjgao/vouchap-crm/internal/security"
	"github.com/jameszjgao/vouchap-crm/internal/service"
)

var ConfigSet = wire.NewSet(config.Load)

var ObservabilitySet = wire.NewSet(
	provideObservabilityRuntime,
	provideAppLogger,
)

var RuntimeInfraSet = wire.NewSet(
	provideRuntimeDB,
	provideRedisClient,
	provideReadinessProbeRunner,
)

var RepositorySet = wire.NewSet(
	repository.NewUserRepository,
	repository.NewOpsUserRepository,
	repository.NewPermissionRepository,
	repository.NewSpaceRepository,
	repository.NewOrderRepository,
	repository.NewSkuRepository,
	repository.NewAssignmentRepository,
	repository.NewFollowUpRepository,
)

var SecuritySet = wire.NewSet(provideJWTManager)

var RBACSet = wire.NewSet(
	rbac.NewResolver,
	rbac.NewSessionRegistry,
	wire.Bind(new(rbac.PermissionStore), new(repository.PermissionRepository)),
	provideBroadcaster,
	providePrefsStore,
)

var ServiceSet = wire.NewSet(
	service.NewAuthService,
	service.NewRoleAdminService,
	service.NewOverviewService,
	service.NewCustomerService,
	service.NewOrderService,
	service.NewSkuService,
	service.NewRoleSyncService,
	service.NewTeamService,
	wire.Bind(new(middleware.SessionSource), new(*service.AuthService)),
)

var HTTPSet = wire.NewSet(
	handler.NewAuthHandler,
	handler.NewMenuHandler,
	handler.NewOverviewHandler,
	handler.NewRoleAdminHandler,
	handler.NewCustomerHandler,
	handler.NewOrderHandler,
	handler.NewSkuHandler,
	handler.NewTeamHandler,
	provideRouterDependencies,
	router.NewRouter,
	provideHTTPServer,
)

var AppSet = wire.NewSet(app.New)

// MigrationRunner backs the standalone migrate entrypoint so deployments
// can apply schema and seed data without booting the API.
type MigrationRunner struct {
	cfg *config.Config
	db  *gorm.DB
}

func NewMigrationRunner(cfg *config.Config, db *gorm.DB) *MigrationRunner {
	return &MigrationRunner{cfg: cfg, db: db}
}

func (m *MigrationRunner) Run() error {
	if err := database.Migrate(m.db); err != nil {
		return err
	}
	report, err := database.Seed(m.db, m.cfg.BootstrapAdminEmail)
	if err != nil {
		return err
	}
	fmt.Printf("migration complete: %+v\n", report)
	return nil
}

func provideObservabilityRuntime(cfg *config.Config) (*observability.Runtime, error) {
	bootstrapLogger := observability.NewBootstrapLogger(cfg)
	return observability.InitRuntime(context.Background(), cfg, bootstrapLogger)
}

func provideAppLogger(cfg *config.Config, runtime *observability.Runtime) *slog.Logger {
	return observability.InitLogger(cfg, runtime.LoggerProvider)
}

func provideOpenDB(cfg *config.Config) (*gorm.DB, error) {
	return database.Open(cfg)
}

func provideRuntimeDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	if _, err := database.Seed(db, cfg.BootstrapAdminEmail); err != nil {
		return nil, err
	}
	return db, nil
}

func provideRedisClient(cfg *config.Config) redis.UniversalClient {
	if !cfg.RefreshRedisEnabled {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

func provideJWTManager(cfg *config.Config) *security.JWTManager {
	return security.NewJWTManager(cfg.JWTAccessSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTAccessTTL)
}

// provideBroadcaster picks the refresh transport: Redis pub/sub when a
// broker is configured, otherwise in-process fan-out for single instances.
func provideBroadcaster(cfg *config.Config, redisClient redis.UniversalClient) rbac.Broadcaster {
	if cfg.RefreshRedisEnabled && redisClient != nil {
		return rbac.NewRedisBroadcaster(redisClient, cfg.RefreshChannel)
	}
	return rbac.NewLocalBroadcaster()
}

func providePrefsStore(cfg *config.Config) *prefs.Store {
	path := cfg.PrefsPath
	if path == "" {
		path = "role_prefs.json"
	}
	return prefs.NewStore(path)
}

func provideReadinessProbeRunner(cfg *config.Config, db *gorm.DB, redisClient redis.UniversalClient) *health.ProbeRunner {
	checkers := make([]health.Checker, 0, 2)
	checkers = append(checkers, health.NewDatabaseChecker(db))
	if cfg.RefreshRedisEnabled {
		checkers = append(checkers, health.NewRedisChecker(redisClient))
	}
	return health.NewProbeRunner(cfg.ReadinessProbeTimeout, cfg.StartupGracePeriod, checkers...)
}

func provideRouterDependencies(
	authHandler *handler.AuthHandler,
	menuHandler *handler.MenuHandler,
	overviewHandler *handler.OverviewHandler,
	roleAdminHandler *handler.RoleAdminHandler,
	customerHandler *handler.CustomerHandler,
	orderHandler *handler.OrderHandler,
	skuHandler *handler.SkuHandler,
	teamHandler *handler.TeamHandler,
	jwt *security.JWTManager,
	sessions middleware.SessionSource,
	readiness *health.ProbeRunner,
	cfg *config.Config,
) router.Dependencies {
	return router.Dependencies{
		AuthHandler:      authHandler,
		MenuHandler:      menuHandler,
		OverviewHandler:  overviewHandler,
		RoleAdminHandler: roleAdminHandler,
		CustomerHandler:  customerHandler,
		OrderHandler:     orderHandler,
		SkuHandler:       skuHandler,
		TeamHandler:      teamHandler,
		JWTManager:       jwt,
		Sessions:         sessions,
		Readiness:        readiness,
		CORSOrigins:      cfg.CORSAllowedOrigins,
		EnableOTelHTTP:   cfg.OTELMetricsEnabled || cfg.OTELTracingEnabled,
	}
}

func provideHTTPServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           h,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
