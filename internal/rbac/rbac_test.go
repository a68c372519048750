package rbac_test

import (
	"testing"

	"go-payroll/internal/rbac"

	"github.com/stretchr/testify/assert"
)

func TestEnforce(t *testing.T) {
	svc, err := rbac.NewService()
	assert.NoError(t, err)

	tests := []struct {
		role     string
		resource string
		action   string
		want     bool
	}{
		{rbac.RoleAdmin, "payroll", "generate", true},
		{rbac.RoleAdmin, "service_bracket", "delete", true},
		{rbac.RoleHRClerk, "payroll", "generate", true},
		{rbac.RoleHRClerk, "payroll", "read", true},
		{rbac.RoleHRClerk, "employee", "delete", false},
		{rbac.RoleHRClerk, "service_bracket", "update", true},
		{rbac.RoleReadOnly, "payroll", "read", true},
		{rbac.RoleReadOnly, "payroll", "generate", false},
		{rbac.RoleReadOnly, "employee", "create", false},
		{"unknown", "employee", "read", false},
	}

	for _, tt := range tests {
		allowed, err := svc.Enforce(tt.role, tt.resource, tt.action)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, allowed, "%s %s %s", tt.role, tt.resource, tt.action)
	}
}
