package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const (
	RoleAdmin    = "admin"
	RoleHRClerk  = "hr_clerk"
	RoleReadOnly = "readonly"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && (p.obj == r.obj || p.obj == "*") && (p.act == r.act || p.act == "*")
`

// Roles are fixed for this system (admin, HR clerk, read-only), so the policy
// set is declared in code rather than loaded from storage.
var policies = [][]string{
	{RoleAdmin, "*", "*"},

	{RoleHRClerk, "*", "read"},
	{RoleHRClerk, "employee", "create"},
	{RoleHRClerk, "employee", "update"},
	{RoleHRClerk, "department", "update"},
	{RoleHRClerk, "salary", "create"},
	{RoleHRClerk, "salary", "update"},
	{RoleHRClerk, "service_bracket", "create"},
	{RoleHRClerk, "service_bracket", "update"},
	{RoleHRClerk, "absence_threshold", "create"},
	{RoleHRClerk, "absence_threshold", "update"},
	{RoleHRClerk, "absence", "create"},
	{RoleHRClerk, "absence", "update"},
	{RoleHRClerk, "payroll", "generate"},

	{RoleReadOnly, "*", "read"},
}

//go:generate mockgen -source=rbac.go -destination=mock/rbac_mock.go -package=mock
type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

func NewService() (Service, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	return s.enforcer.Enforce(role, resource, action)
}
