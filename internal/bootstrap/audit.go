package bootstrap

import "context"

// AuditLog is a single operational audit entry (server lifecycle, payroll
// generation runs). Distinct from request logging: audit entries are
// intentional, low-volume records.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
