package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopeClassification_PartitionsCatalog(t *testing.T) {
	t.Parallel()

	for _, role := range AllRoles {
		global := HasGlobalAccess(role)
		company := IsCompanyScoped(role)
		event := IsEventScoped(role)

		count := 0
		for _, b := range []bool{global, company, event} {
			if b {
				count++
			}
		}
		assert.Equal(t, 1, count, "role %s must belong to exactly one scope bucket", role)

		if global {
			assert.False(t, company, "global role %s must not be company-scoped", role)
			assert.False(t, event, "global role %s must not be event-scoped", role)
		}
	}
}

func TestScopeClassification_CatalogComplete(t *testing.T) {
	t.Parallel()

	assert.Len(t, AllRoles, 12)
	assert.Len(t, RoleHierarchy, 12)
	for _, role := range AllRoles {
		assert.Contains(t, RoleHierarchy, role)
		assert.True(t, IsValidRole(string(role)))
	}
	assert.False(t, IsValidRole("estagiario"))
}

func TestCanManageUsers_AdministradorOnly(t *testing.T) {
	t.Parallel()

	for _, role := range AllRoles {
		if role == RoleAdministrador {
			assert.True(t, CanManageUsers(role))
		} else {
			assert.False(t, CanManageUsers(role), "role %s must not manage users", role)
		}
	}
}

func TestCanManageCategories(t *testing.T) {
	t.Parallel()

	allowed := map[Role]bool{
		RoleAdministrador:   true,
		RoleGerenteGeral:    true,
		RoleLiderFinanceiro: true,
	}
	for _, role := range AllRoles {
		assert.Equal(t, allowed[role], CanManageCategories(role), "role %s", role)
	}
}

func TestCanManageFinancials_DeniesOnlyMonitor(t *testing.T) {
	t.Parallel()

	assert.False(t, CanManageFinancials(RoleMonitor))
	for _, role := range AllRoles {
		if role == RoleMonitor {
			continue
		}
		assert.True(t, CanManageFinancials(role), "role %s must manage financials", role)
	}
}

func TestCanApproveFinancials(t *testing.T) {
	t.Parallel()

	allowed := map[Role]bool{
		RoleAdministrador:   true,
		RoleGerenteGeral:    true,
		RoleGerenteRegional: true,
		RoleLiderFinanceiro: true,
	}
	for _, role := range AllRoles {
		assert.Equal(t, allowed[role], CanApproveFinancials(role), "role %s", role)
	}
}
