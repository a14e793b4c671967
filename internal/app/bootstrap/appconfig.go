// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level and format, and request body limits. AppConfig
// is where everything specific to this application lives.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Flash-message cookie configuration. The cookie carries nothing but
	// one-shot notices; there are no login sessions in this app.
	SessionKey    string // Secret key for signing the cookie (must be strong in production)
	SessionName   string // Cookie name
	SessionDomain string // Cookie domain (blank means current host)

	// Map rendering configuration
	MapsAPIKey     string // Google Maps JavaScript API key (blank disables the embedded map)
	MapDefaultZoom int    // Zoom level for single-profile maps

	// SimulateLatency adds an artificial pause to every store operation so
	// the views' loading states can be exercised in dev. Zero disables it.
	SimulateLatency time.Duration
}
