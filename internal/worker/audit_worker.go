package worker

import (
	"github.com/mangostorage/inventory-service/internal/service"
)

// StartAuditWorker registers audit event handlers.
func StartAuditWorker(auditService *service.AuditService) {
	if auditService == nil {
		return
	}
	auditService.RegisterHandlers()
}
