package worker

import (
	"github.com/spec-kit/sportstats/internal/service"
)

// StartSubscribers registers the persistence and view refresh handlers.
func StartSubscribers(syncService *service.SyncService, viewService *service.ViewService) {
	if syncService != nil {
		syncService.RegisterHandlers()
	}
	if viewService != nil {
		viewService.RegisterHandlers()
	}
}
