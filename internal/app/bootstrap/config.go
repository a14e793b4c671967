// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for ProfileMap.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, maps_api_key, etc.
//   - Environment variables: PROFILEMAP_MONGO_URI, PROFILEMAP_MAPS_API_KEY, etc.
//   - Command-line flags: --mongo_uri, --maps_api_key, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "profilemap", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Flash cookie signing key (must be strong in production)"},
	{Name: "session_name", Default: "profilemap-session", Desc: "Flash cookie name"},
	{Name: "session_domain", Default: "", Desc: "Flash cookie domain (blank means current host)"},

	// Map rendering
	{Name: "maps_api_key", Default: "", Desc: "Google Maps JavaScript API key (blank disables the embedded map)"},
	{Name: "map_default_zoom", Default: 12, Desc: "Zoom level for single-profile maps"},

	// Dev aid
	{Name: "simulate_latency", Default: "0s", Desc: "Artificial delay added to every store operation (e.g., 500ms)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, PROFILEMAP_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "PROFILEMAP", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		MapsAPIKey:     appValues.String("maps_api_key"),
		MapDefaultZoom: appValues.Int("map_default_zoom"),

		SimulateLatency: appValues.Duration("simulate_latency", 0*time.Second),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The MongoDB URI format is checked here to catch configuration errors
// early, before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.MapDefaultZoom < 1 || appCfg.MapDefaultZoom > 21 {
		return fmt.Errorf("map_default_zoom must be between 1 and 21, got %d", appCfg.MapDefaultZoom)
	}

	if appCfg.MapsAPIKey == "" {
		logger.Warn("maps_api_key is not set; map panels will render a placeholder")
	}

	return nil
}
