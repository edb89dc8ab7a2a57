package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orgdesk/admin-api/internal/core/domain"
	"github.com/orgdesk/admin-api/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	FullName     string      `json:"full_name" validate:"required,min=4,max=30"`
	Email        string      `json:"email" validate:"required,email"`
	Phone        string      `json:"phone,omitempty" validate:"omitempty,min=10,max=12"`
	Role         domain.Role `json:"role" validate:"required,oneof=admin employee"`
	Department   string      `json:"department" validate:"required"`
	DistrictID   int         `json:"district_id,omitempty"`
	DistrictName string      `json:"district_name,omitempty" validate:"omitempty,min=4,max=100"`
	Password     string      `json:"password" validate:"required,min=8,max=20"`
}

// Create onboards a new user into a department.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), user, ports.CreateUserInput{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         req.Role,
		DepartmentID: req.Department,
		DistrictID:   req.DistrictID,
		DistrictName: req.DistrictName,
		Password:     req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Get returns one user by id, scoped to the caller's department.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	found, err := h.service.Get(c.Request().Context(), user, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, found)
}

// List returns the users visible to the caller.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.User
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	users, err := h.service.List(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

type updateUserRequest struct {
	FullName     *string      `json:"full_name,omitempty" validate:"omitempty,min=4,max=30"`
	Email        *string      `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string      `json:"phone,omitempty" validate:"omitempty,min=10,max=12"`
	Role         *domain.Role `json:"role,omitempty" validate:"omitempty,oneof=admin employee"`
	Department   *string      `json:"department,omitempty"`
	DistrictID   *int         `json:"district_id,omitempty"`
	DistrictName *string      `json:"district_name,omitempty" validate:"omitempty,min=4,max=100"`
}

// Update applies a partial update to a user, scoped to the caller's
// department.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), user, c.Param("id"), ports.UpdateUserInput{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         req.Role,
		DepartmentID: req.Department,
		DistrictID:   req.DistrictID,
		DistrictName: req.DistrictName,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes a user, scoped to the caller's department.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}
