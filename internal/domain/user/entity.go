package user

import "time"

type Role string

const (
	// Global roles: see every company, event and financial record.
	RoleAdministrador   Role = "administrador"
	RoleGerenteGeral    Role = "gerente_geral"
	RoleLiderFinanceiro Role = "lider_financeiro"

	// Company-scoped roles: restricted to linked companies, transitively to
	// everything under them.
	RoleGerenteRegional    Role = "gerente_regional"
	RoleSupervisorRegional Role = "supervisor_regional"
	RoleCoordenadorEmpresa Role = "coordenador_empresa"
	RoleFinanceiroEmpresa  Role = "financeiro_empresa"

	// Event-scoped roles: restricted to linked events; no direct company
	// visibility.
	RoleLiderEvento       Role = "lider_evento"
	RoleCoordenadorEvento Role = "coordenador_evento"
	RoleOperadorCaixa     Role = "operador_caixa"
	RoleAuxiliarEvento    Role = "auxiliar_evento"
	RoleMonitor           Role = "monitor"
)

// AllRoles lists the full role catalog in hierarchy order.
var AllRoles = []Role{
	RoleAdministrador,
	RoleGerenteGeral,
	RoleLiderFinanceiro,
	RoleGerenteRegional,
	RoleSupervisorRegional,
	RoleCoordenadorEmpresa,
	RoleFinanceiroEmpresa,
	RoleLiderEvento,
	RoleCoordenadorEvento,
	RoleOperadorCaixa,
	RoleAuxiliarEvento,
	RoleMonitor,
}

// RoleHierarchy maps each role to its numeric level (1 = highest). Kept as
// reference data; no comparison logic consumes it.
var RoleHierarchy = map[Role]int{
	RoleAdministrador:      1,
	RoleGerenteGeral:       2,
	RoleLiderFinanceiro:    3,
	RoleGerenteRegional:    4,
	RoleSupervisorRegional: 5,
	RoleCoordenadorEmpresa: 6,
	RoleFinanceiroEmpresa:  7,
	RoleLiderEvento:        8,
	RoleCoordenadorEvento:  9,
	RoleOperadorCaixa:      10,
	RoleAuxiliarEvento:     11,
	RoleMonitor:            12,
}

// IsValidRole reports whether s names one of the catalog roles.
func IsValidRole(s string) bool {
	_, ok := RoleHierarchy[Role(s)]
	return ok
}

type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash *string
	Role         Role
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join / DTO only, populated by permission list queries.
	CompanyIDs []int64
	EventIDs   []int64
}

// IsAdministrador checks if the user holds the administrator role.
func (u *User) IsAdministrador() bool {
	return u.Role == RoleAdministrador
}
