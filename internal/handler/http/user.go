package http

import (
	"encoding/json"
	"net/http"

	"github.com/eventosfin/financeiro-backend-go/internal/domain/user"
	"github.com/eventosfin/financeiro-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// List implements UserHandler.
func (u *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	_, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	users, err := u.userService.List(r.Context(), role)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]user.UserResponse, 0, len(users))
	for _, item := range users {
		out = append(out, user.ToResponse(item))
	}
	response.Success(w, out)
}

// GetByID implements UserHandler.
func (u *UserHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	_, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid user id", nil)
		return
	}

	userData, err := u.userService.GetByID(r.Context(), role, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, user.ToResponse(userData))
}

// Create implements UserHandler.
func (u *UserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	_, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req user.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := u.userService.Create(r.Context(), role, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "User created successfully", user.ToResponse(created))
}

// Update implements UserHandler.
func (u *UserHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	_, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid user id", nil)
		return
	}

	var req user.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := u.userService.Update(r.Context(), role, id, req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "User updated successfully", nil)
}

// Delete implements UserHandler.
func (u *UserHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	_, role, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid user id", nil)
		return
	}

	if err := u.userService.Delete(r.Context(), role, id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "User deleted successfully", nil)
}
