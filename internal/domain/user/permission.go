package user

// Scope classification. The three sets below partition the role catalog:
// every role belongs to exactly one of them.

var globalRoles = map[Role]struct{}{
	RoleAdministrador:   {},
	RoleGerenteGeral:    {},
	RoleLiderFinanceiro: {},
}

var companyScopedRoles = map[Role]struct{}{
	RoleGerenteRegional:    {},
	RoleSupervisorRegional: {},
	RoleCoordenadorEmpresa: {},
	RoleFinanceiroEmpresa:  {},
}

var eventScopedRoles = map[Role]struct{}{
	RoleLiderEvento:       {},
	RoleCoordenadorEvento: {},
	RoleOperadorCaixa:     {},
	RoleAuxiliarEvento:    {},
	RoleMonitor:           {},
}

// HasGlobalAccess reports whether role sees all companies, events and
// financial records without restriction.
func HasGlobalAccess(role Role) bool {
	_, ok := globalRoles[role]
	return ok
}

// IsCompanyScoped reports whether role is restricted to explicitly linked
// companies (and transitively to their events and records).
func IsCompanyScoped(role Role) bool {
	_, ok := companyScopedRoles[role]
	return ok
}

// IsEventScoped reports whether role is restricted to explicitly linked
// events (and transitively to their records), with no company visibility.
func IsEventScoped(role Role) bool {
	_, ok := eventScopedRoles[role]
	return ok
}

// Capability predicates. Pure over role; consulted on every request, never
// cached across requests.

// CanManageUsers reports whether role may create, update or delete system
// users and their permission links.
func CanManageUsers(role Role) bool {
	return role == RoleAdministrador
}

// CanManageCategories reports whether role may maintain the expense/revenue
// category catalog.
func CanManageCategories(role Role) bool {
	switch role {
	case RoleAdministrador, RoleGerenteGeral, RoleLiderFinanceiro:
		return true
	}
	return false
}

// CanManageFinancials reports whether role may create or update payables,
// receivables and daily revenue entries. Monitors are read-only; every other
// role may write.
func CanManageFinancials(role Role) bool {
	return role != RoleMonitor
}

// CanApproveFinancials reports whether role may approve pending financial
// records.
func CanApproveFinancials(role Role) bool {
	switch role {
	case RoleAdministrador, RoleGerenteGeral, RoleGerenteRegional, RoleLiderFinanceiro:
		return true
	}
	return false
}
