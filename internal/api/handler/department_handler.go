package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orgdesk/admin-api/internal/core/ports"
)

type DepartmentHandler struct {
	service ports.DepartmentService
}

func NewDepartmentHandler(service ports.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

type createDepartmentRequest struct {
	Name  string `json:"name" validate:"required,min=4,max=30"`
	Email string `json:"email" validate:"required,email"`
	City  string `json:"city" validate:"required,min=4,max=30"`
	State string `json:"state" validate:"required,min=4,max=30"`
}

type updateDepartmentRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=4,max=30"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	City  *string `json:"city,omitempty" validate:"omitempty,max=30"`
	State *string `json:"state,omitempty" validate:"omitempty,max=30"`
}

// List returns the departments visible to the caller.
//
// @Summary      List departments
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Department
// @Router       /departments [get]
func (h *DepartmentHandler) List(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	depts, err := h.service.List(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, depts)
}

// Get returns one department by id, scoped to the caller.
//
// @Summary      Get a department
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Department ID"
// @Success      200  {object}  domain.Department
// @Failure      404  {object}  map[string]string
// @Router       /departments/{id} [get]
func (h *DepartmentHandler) Get(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	dept, err := h.service.Get(c.Request().Context(), user, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dept)
}

// Create adds a new department. Super admin only.
//
// @Summary      Create a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDepartmentRequest  true  "Department"
// @Success      201   {object}  domain.Department
// @Failure      400   {object}  map[string]string
// @Router       /departments [post]
func (h *DepartmentHandler) Create(c echo.Context) error {
	var req createDepartmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dept, err := h.service.Create(c.Request().Context(), ports.CreateDepartmentInput{
		Name:  req.Name,
		Email: req.Email,
		City:  req.City,
		State: req.State,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dept)
}

// Update applies a partial update to a department.
//
// @Summary      Update a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Department ID"
// @Param        body  body      updateDepartmentRequest  true  "Fields to update"
// @Success      200   {object}  domain.Department
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /departments/{id} [patch]
func (h *DepartmentHandler) Update(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	var req updateDepartmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dept, err := h.service.Update(c.Request().Context(), user, c.Param("id"), ports.UpdateDepartmentInput{
		Name:  req.Name,
		Email: req.Email,
		City:  req.City,
		State: req.State,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dept)
}

// Delete removes a department. Super admin only.
//
// @Summary      Delete a department
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Department ID"
// @Success      200  {object}  domain.Department
// @Failure      404  {object}  map[string]string
// @Router       /departments/{id} [delete]
func (h *DepartmentHandler) Delete(c echo.Context) error {
	dept, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dept)
}
