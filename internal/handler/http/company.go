package http

import (
	"encoding/json"
	"net/http"

	"github.com/eventosfin/financeiro-backend-go/internal/domain/company"
	"github.com/eventosfin/financeiro-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{companyService: companyService}
}

// List implements CompanyHandler.
func (c *CompanyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	companies, err := c.companyService.List(r.Context(), userID, role)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]company.CompanyResponse, 0, len(companies))
	for _, item := range companies {
		out = append(out, company.ToResponse(item))
	}
	response.Success(w, out)
}

// GetByID implements CompanyHandler.
func (c *CompanyHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid company id", nil)
		return
	}

	companyData, err := c.companyService.GetByID(r.Context(), userID, role, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, company.ToResponse(companyData))
}

// Create implements CompanyHandler.
func (c *CompanyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	_, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req company.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := c.companyService.Create(r.Context(), role, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Company created successfully", company.ToResponse(created))
}

// Update implements CompanyHandler.
func (c *CompanyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	_, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid company id", nil)
		return
	}

	var req company.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := c.companyService.Update(r.Context(), role, id, req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Company updated successfully", nil)
}

// Delete implements CompanyHandler.
func (c *CompanyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	_, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid company id", nil)
		return
	}

	if err := c.companyService.Delete(r.Context(), role, id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Company deleted successfully", nil)
}
