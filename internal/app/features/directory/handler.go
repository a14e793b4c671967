// internal/app/features/directory/handler.go
package directory

import (
	uierrors "github.com/dmfarley/profilemap/internal/app/features/errors"
	profilestore "github.com/dmfarley/profilemap/internal/app/store/profiles"
	"go.uber.org/zap"
)

// Handler owns the public directory page: the card grid, its live text
// filter, and the map panel for the selected profile.
//
// It is constructed once at startup in bootstrap with the shared profile
// store and logger.
type Handler struct {
	Profiles *profilestore.Store
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger

	MapsAPIKey string
	MapZoom    int
}

// NewHandler constructs a directory Handler bound to the given store.
func NewHandler(profiles *profilestore.Store, mapsAPIKey string, mapZoom int, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Profiles:   profiles,
		Log:        logger,
		ErrLog:     errLog,
		MapsAPIKey: mapsAPIKey,
		MapZoom:    mapZoom,
	}
}
