package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/eventosfin/financeiro-backend-go/internal/domain/financial"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/user"
	"github.com/eventosfin/financeiro-backend-go/internal/handler/http/response"
)

// requireCapability gates a route on a role predicate. The service layer
// re-checks the same predicate, so this is an early rejection, not the only
// line of defense.
func requireCapability(capability func(user.Role) bool, denied error) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, denied)
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok || !capability(user.Role(roleStr)) {
				response.HandleError(w, denied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly admits only roles that may manage users.
var AdminOnly = requireCapability(user.CanManageUsers, user.ErrAdminPrivilegeRequired)

// CategoryManagerOnly admits only roles that may maintain the category
// catalog.
var CategoryManagerOnly = requireCapability(user.CanManageCategories, user.ErrInsufficientPermissions)

// FinancialWriterOnly admits only roles that may write financial records.
var FinancialWriterOnly = requireCapability(user.CanManageFinancials, user.ErrFinancialWriteNotAllowed)

// ApproverOnly admits only roles that may approve financial records.
var ApproverOnly = requireCapability(user.CanApproveFinancials, financial.ErrApprovalNotAllowed)
