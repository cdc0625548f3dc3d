package http

import (
	"encoding/json"
	"net/http"

	"github.com/eventosfin/financeiro-backend-go/internal/domain/category"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/client"
	"github.com/eventosfin/financeiro-backend-go/internal/domain/supplier"
	"github.com/eventosfin/financeiro-backend-go/internal/handler/http/response"
	"github.com/eventosfin/financeiro-backend-go/internal/service/registry"
)

type RegistryHandler interface {
	ListSuppliers(w http.ResponseWriter, r *http.Request)
	GetSupplier(w http.ResponseWriter, r *http.Request)
	CreateSupplier(w http.ResponseWriter, r *http.Request)
	UpdateSupplier(w http.ResponseWriter, r *http.Request)
	DeleteSupplier(w http.ResponseWriter, r *http.Request)

	ListClients(w http.ResponseWriter, r *http.Request)
	GetClient(w http.ResponseWriter, r *http.Request)
	CreateClient(w http.ResponseWriter, r *http.Request)
	UpdateClient(w http.ResponseWriter, r *http.Request)
	DeleteClient(w http.ResponseWriter, r *http.Request)

	ListCategories(w http.ResponseWriter, r *http.Request)
	GetCategory(w http.ResponseWriter, r *http.Request)
	CreateCategory(w http.ResponseWriter, r *http.Request)
	UpdateCategory(w http.ResponseWriter, r *http.Request)
	DeleteCategory(w http.ResponseWriter, r *http.Request)
}

type RegistryHandlerImpl struct {
	suppliers  registry.SupplierService
	clients    registry.ClientService
	categories registry.CategoryService
}

func NewRegistryHandler(suppliers registry.SupplierService, clients registry.ClientService, categories registry.CategoryService) RegistryHandler {
	return &RegistryHandlerImpl{
		suppliers:  suppliers,
		clients:    clients,
		categories: categories,
	}
}

// ListSuppliers implements RegistryHandler.
func (h *RegistryHandlerImpl) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.suppliers.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]supplier.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, supplier.ToResponse(s))
	}
	response.Success(w, out)
}

// GetSupplier implements RegistryHandler.
func (h *RegistryHandlerImpl) GetSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid supplier id", nil)
		return
	}

	s, err := h.suppliers.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, supplier.ToResponse(s))
}

// CreateSupplier implements RegistryHandler.
func (h *RegistryHandlerImpl) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	_, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req supplier.UpsertSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.suppliers.Create(r.Context(), role, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Supplier created successfully", supplier.ToResponse(created))
}

// UpdateSupplier implements RegistryHandler.
func (h *RegistryHandlerImpl) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	_, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid supplier id", nil)
		return
	}

	var req supplier.UpsertSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.suppliers.Update(r.Context(), role, id, req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Supplier updated successfully", nil)
}

// DeleteSupplier implements RegistryHandler.
func (h *RegistryHandlerImpl) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	_, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid supplier id", nil)
		return
	}

	if err := h.suppliers.Delete(r.Context(), role, id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Supplier deleted successfully", nil)
}

// ListClients implements RegistryHandler.
func (h *RegistryHandlerImpl) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clients.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]client.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, client.ToResponse(c))
	}
	response.Success(w, out)
}

// GetClient implements RegistryHandler.
func (h *RegistryHandlerImpl) GetClient(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid client id", nil)
		return
	}

	c, err := h.clients.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, client.ToResponse(c))
}

// CreateClient implements RegistryHandler.
func (h *RegistryHandlerImpl) CreateClient(w http.ResponseWriter, r *http.Request) {
	_, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req client.UpsertClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.clients.Create(r.Context(), role, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Client created successfully", client.ToResponse(created))
}

// UpdateClient implements RegistryHandler.
func (h *RegistryHandlerImpl) UpdateClient(w http.ResponseWriter, r *http.Request) {
	_, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid client id", nil)
		return
	}

	var req client.UpsertClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.clients.Update(r.Context(), role, id, req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Client updated successfully", nil)
}

// DeleteClient implements RegistryHandler.
func (h *RegistryHandlerImpl) DeleteClient(w http.ResponseWriter, r *http.Request) {
	_, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid client id", nil)
		return
	}

	if err := h.clients.Delete(r.Context(), role, id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Client deleted successfully", nil)
}

// ListCategories implements RegistryHandler.
func (h *RegistryHandlerImpl) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]category.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, category.ToResponse(c))
	}
	response.Success(w, out)
}

// GetCategory implements RegistryHandler.
func (h *RegistryHandlerImpl) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid category id", nil)
		return
	}

	c, err := h.categories.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, category.ToResponse(c))
}

// CreateCategory implements RegistryHandler.
func (h *RegistryHandlerImpl) CreateCategory(w http.ResponseWriter, r *http.Request) {
	_, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req category.UpsertCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.categories.Create(r.Context(), role, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Category created successfully", category.ToResponse(created))
}

// UpdateCategory implements RegistryHandler.
func (h *RegistryHandlerImpl) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	_, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid category id", nil)
		return
	}

	var req category.UpsertCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.categories.Update(r.Context(), role, id, req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Category updated successfully", nil)
}

// DeleteCategory implements RegistryHandler.
func (h *RegistryHandlerImpl) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	_, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid category id", nil)
		return
	}

	if err := h.categories.Delete(r.Context(), role, id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Category deleted successfully", nil)
}
