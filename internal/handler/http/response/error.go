package response

import (
	"errors"
	"net/http"

	"github.com/eventosfin/financeiro-backend-go/internal/domain/auth"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/category"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/client"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/company"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/event"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/financial"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/supplier"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/user"
	"github.com/eventosfin/financeiro-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrCaptchaRequired), errors.Is(err, auth.ErrCaptchaInvalid):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, auth.ErrTooManyAttempts):
		TooManyRequests(w, "Too many failed login attempts, try again later")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Permission errors
	case errors.Is(err, user.ErrAdminPrivilegeRequired),
		errors.Is(err, user.ErrInsufficientPermissions),
		errors.Is(err, user.ErrFinancialWriteNotAllowed),
		errors.Is(err, financial.ErrApprovalNotAllowed),
		errors.Is(err, financial.ErrRecordAccessDenied),
		errors.Is(err, company.ErrCompanyAccessDenied),
		errors.Is(err, event.ErrEventAccessDenied):
		Forbidden(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Unknown role", nil)

	// Company / event domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyCNPJExists):
		Conflict(w, "Company CNPJ already registered")
	case errors.Is(err, event.ErrEventNotFound):
		NotFound(w, "Event not found")

	// Registry domain errors
	case errors.Is(err, supplier.ErrSupplierNotFound):
		NotFound(w, "Supplier not found")
	case errors.Is(err, supplier.ErrSupplierCNPJExists):
		Conflict(w, "Supplier CNPJ already registered")
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, client.ErrClientDocumentExists):
		Conflict(w, "Client document already registered")
	case errors.Is(err, category.ErrCategoryNotFound):
		NotFound(w, "Category not found")
	case errors.Is(err, category.ErrCategoryNameExists):
		Conflict(w, "Category name already exists")

	// Financial domain errors
	case errors.Is(err, financial.ErrRecordNotFound):
		NotFound(w, "Financial record not found")
	case errors.Is(err, financial.ErrInvalidAmount):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, financial.ErrRecordAlreadyApproved),
		errors.Is(err, financial.ErrRecordNotApproved),
		errors.Is(err, financial.ErrRecordAlreadyPaid),
		errors.Is(err, financial.ErrRecordCancelled),
		errors.Is(err, financial.ErrDuplicateDailyRevenue):
		Conflict(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
