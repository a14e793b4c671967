// internal/app/features/admin/handler.go
package admin

import (
	uierrors "github.com/dmfarley/profilemap/internal/app/features/errors"
	profilestore "github.com/dmfarley/profilemap/internal/app/store/profiles"
	"github.com/dmfarley/profilemap/internal/app/system/flash"
	"go.uber.org/zap"
)

// Handler owns the admin surface: the filterable profile list and the
// create, edit, and delete flows.
//
// It is constructed once at startup in bootstrap, using the shared profile
// store, flash manager, and logger.
type Handler struct {
	Profiles *profilestore.Store
	Flash    *flash.Manager
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
}

// NewHandler constructs an admin Handler.
func NewHandler(profiles *profilestore.Store, fl *flash.Manager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Profiles: profiles,
		Flash:    fl,
		Log:      logger,
		ErrLog:   errLog,
	}
}
