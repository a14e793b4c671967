// internal/app/features/profiles/handler.go
package profiles

import (
	uierrors "github.com/dmfarley/profilemap/internal/app/features/errors"
	profilestore "github.com/dmfarley/profilemap/internal/app/store/profiles"
	"go.uber.org/zap"
)

// Handler serves the public profile detail page.
type Handler struct {
	Profiles *profilestore.Store
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger

	MapsAPIKey string
	MapZoom    int
}

// NewHandler constructs a detail Handler bound to the given store.
func NewHandler(profiles *profilestore.Store, mapsAPIKey string, mapZoom int, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Profiles:   profiles,
		Log:        logger,
		ErrLog:     errLog,
		MapsAPIKey: mapsAPIKey,
		MapZoom:    mapZoom,
	}
}
