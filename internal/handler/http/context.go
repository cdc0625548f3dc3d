package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/eventosfin/financeiro-backend-go/internal/domain/auth"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/user"
)

// identity extracts the caller's user id and role from the verified access
// token.
func identity(r *http.Request) (int64, user.Role, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, "", auth.ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return 0, "", auth.ErrInvalidToken
	}

	// jwx decodes JSON numbers as float64.
	switch v := claims["user_id"].(type) {
	case float64:
		return int64(v), user.Role(roleStr), nil
	case int64:
		return v, user.Role(roleStr), nil
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, "", auth.ErrInvalidToken
		}
		return id, user.Role(roleStr), nil
	default:
		return 0, "", auth.ErrInvalidToken
	}
}

// idParam parses the {id} route parameter.
func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
