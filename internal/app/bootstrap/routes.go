// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	adminfeature "github.com/dmfarley/profilemap/internal/app/features/admin"
	directoryfeature "github.com/dmfarley/profilemap/internal/app/features/directory"
	errorsfeature "github.com/dmfarley/profilemap/internal/app/features/errors"
	healthfeature "github.com/dmfarley/profilemap/internal/app/features/health"
	profilesfeature "github.com/dmfarley/profilemap/internal/app/features/profiles"
	profilestore "github.com/dmfarley/profilemap/internal/app/store/profiles"
	"github.com/dmfarley/profilemap/internal/app/system/flash"
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
// ProfileMap initializes the template engine, builds the shared profile
// store and flash manager, and mounts the three application areas: the
// public directory at /, profile detail pages at /profile, and the admin
// panel at /admin.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Flash messages for the admin Post/Redirect/Get cycles.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	flashMgr := flash.NewManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)

	// Shared profile store. The optional artificial latency lets dev
	// environments exercise the views' loading states.
	store := profilestore.New(deps.MongoDatabase)
	if appCfg.SimulateLatency > 0 {
		logger.Info("simulating store latency", zap.Duration("delay", appCfg.SimulateLatency))
		store = store.WithLatency(appCfg.SimulateLatency)
	}

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Unmatched routes get the 404 page. Registered before the mounts so
	// subrouters inherit it.
	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public directory and detail pages
	directoryHandler := directoryfeature.NewHandler(store, appCfg.MapsAPIKey, appCfg.MapDefaultZoom, errLog, logger)
	r.Mount("/", directoryfeature.Routes(directoryHandler))

	detailHandler := profilesfeature.NewHandler(store, appCfg.MapsAPIKey, appCfg.MapDefaultZoom, errLog, logger)
	r.Mount("/profile", profilesfeature.Routes(detailHandler))

	// Admin panel
	adminHandler := adminfeature.NewHandler(store, flashMgr, errLog, logger)
	r.Mount("/admin", adminfeature.Routes(adminHandler))

	return r, nil
}
