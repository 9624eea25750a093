package service

import (
	"github.com/unidesk/challan-desk/internal/adapter"
	"github.com/unidesk/challan-desk/internal/logger"
	"github.com/unidesk/challan-desk/internal/store"
)

// ClientServices groups every client-side service for wiring into the UI.
type ClientServices struct {
	SessionService SessionService
	AuthService    AuthService
	ChallanService ChallanService
}

// NewClientServices assembles the service layer. The session service is
// created by the caller beforehand because the portal adapter needs its
// Token method as a credential source.
func NewClientServices(sessions SessionService, portalAdapter adapter.PortalAdapter, storages *store.ClientStorages, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		SessionService: sessions,
		AuthService:    NewAuthService(portalAdapter, sessions, logger),
		ChallanService: NewChallanService(portalAdapter, storages.ChallanCacheRepository, logger),
	}
}
