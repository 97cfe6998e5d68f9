package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"expenses/internal/middleware"
	"expenses/internal/service"
)

// ExpenseHandler exposes ownership-scoped expense CRUD over HTTP. All
// routes run behind the JWT and ResolveCaller middleware, so handlers can
// assume an authenticated caller.
type ExpenseHandler struct {
	expenses *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler.
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenseService}
}

// Create adds a new expense owned by the caller --> POST /expenses/
func (h *ExpenseHandler) Create(c echo.Context) error {
	raw, err := bindBody(c)
	if err != nil {
		return err
	}

	expense, err := h.expenses.Create(c.Request().Context(), middleware.Caller(c), raw)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, expense)
}

// List returns all of the caller's expenses --> GET /expenses/
func (h *ExpenseHandler) List(c echo.Context) error {
	expenses, err := h.expenses.List(c.Request().Context(), middleware.Caller(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, expenses)
}

// Get returns a single expense --> GET /expenses/:id
func (h *ExpenseHandler) Get(c echo.Context) error {
	id, err := expenseID(c)
	if err != nil {
		return err
	}

	expense, err := h.expenses.Get(c.Request().Context(), middleware.Caller(c), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, expense)
}

// Update applies a partial update to an expense --> PATCH /expenses/:id
func (h *ExpenseHandler) Update(c echo.Context) error {
	id, err := expenseID(c)
	if err != nil {
		return err
	}

	raw, err := bindBody(c)
	if err != nil {
		return err
	}

	expense, err := h.expenses.Update(c.Request().Context(), middleware.Caller(c), id, raw)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, expense)
}

// Delete removes an expense --> DELETE /expenses/:id
func (h *ExpenseHandler) Delete(c echo.Context) error {
	id, err := expenseID(c)
	if err != nil {
		return err
	}

	if err := h.expenses.Delete(c.Request().Context(), middleware.Caller(c), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// expenseID parses the :id path parameter. A non-integer id means the
// route cannot name an existing expense, so it reports NotFound rather
// than a validation failure.
func expenseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, service.ErrExpenseNotFound
	}
	return id, nil
}

// bindBody decodes a JSON request body into a raw mapping for the
// validation layer. A missing body is treated as an empty object so the
// validators report the missing fields individually.
func bindBody(c echo.Context) (map[string]any, error) {
	raw := map[string]any{}
	err := json.NewDecoder(c.Request().Body).Decode(&raw)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid JSON body")
	}
	return raw, nil
}
