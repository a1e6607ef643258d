// filepath: internal/audit/logger_auditor.go
package audit

import (
	"context"

	"habithub/internal/logging"
	"habithub/internal/services"

	"github.com/sirupsen/logrus"
)

// Ensure LoggerAuditor implements services.Auditor
var _ services.Auditor = (*LoggerAuditor)(nil)

// LoggerAuditor writes audit events for habit changes to a logrus logger.
type LoggerAuditor struct {
	enabled bool
	logger  *logrus.Logger
}

// NewLoggerAuditor creates a LoggerAuditor writing to logger.
// A nil logger falls back to the application log.
func NewLoggerAuditor(enabled bool, logger *logrus.Logger) *LoggerAuditor {
	return &LoggerAuditor{enabled: enabled, logger: logger}
}

// Log records an event if auditing is enabled.
func (a *LoggerAuditor) Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{}) {
	if !a.enabled {
		return
	}

	fields := logrus.Fields{
		"audit_action":   action,
		"audit_actor":    actor,
		"audit_resource": resource,
	}
	if id := logging.RequestID(ctx); id != "" {
		fields["request_id"] = id
	}
	for k, v := range details {
		fields["detail."+k] = v
	}

	logger := a.logger
	if logger == nil {
		logger = logging.Log
	}
	logger.WithFields(fields).Info("AUDIT EVENT")
}
