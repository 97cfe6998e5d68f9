package service

import (
	"context"
	"log/slog"

	"expenses/internal/models"
	"expenses/internal/storage"
	"expenses/internal/validation"
)

// ExpenseService implements CRUD on expense records scoped to the
// authenticated caller. Every operation except Create and List loads the
// target row first: a missing row yields ErrExpenseNotFound before
// ownership is evaluated, then a row owned by someone else yields
// ErrNotExpenseOwner.
type ExpenseService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewExpenseService creates a new expense service.
func NewExpenseService(store storage.Store, logger *slog.Logger) *ExpenseService {
	return &ExpenseService{store: store, logger: logger}
}

// Create validates the request body and persists a new expense owned by the
// caller.
func (s *ExpenseService) Create(ctx context.Context, caller *models.User, raw map[string]any) (*models.Expense, error) {
	in, errs := validation.ExpenseCreate(raw)
	if len(errs) > 0 {
		return nil, errs
	}

	expense := &models.Expense{
		Title:   *in.Title,
		Amount:  *in.Amount,
		OwnerID: caller.ID,
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}

	s.logger.Info("expense created", "expense_id", expense.ID, "user_id", caller.ID)
	return expense, nil
}

// List returns all expenses owned by the caller in store-native
// (insertion) order.
func (s *ExpenseService) List(ctx context.Context, caller *models.User) ([]models.Expense, error) {
	return s.store.ListExpensesByOwner(ctx, caller.ID)
}

// Get returns the expense with the given id if the caller owns it.
func (s *ExpenseService) Get(ctx context.Context, caller *models.User, id int64) (*models.Expense, error) {
	return s.load(ctx, caller, id)
}

// Update applies the supplied fields to the caller's expense and persists
// it. Fields absent from the body are left unchanged; there is no
// concurrent-edit conflict resolution, last write wins.
func (s *ExpenseService) Update(ctx context.Context, caller *models.User, id int64, raw map[string]any) (*models.Expense, error) {
	expense, err := s.load(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	in, errs := validation.ExpenseUpdate(raw)
	if len(errs) > 0 {
		return nil, errs
	}

	if in.Title != nil {
		expense.Title = *in.Title
	}
	if in.Amount != nil {
		expense.Amount = *in.Amount
	}
	if err := s.store.UpdateExpense(ctx, expense); err != nil {
		return nil, err
	}

	s.logger.Info("expense updated", "expense_id", expense.ID, "user_id", caller.ID)
	return expense, nil
}

// Delete removes the caller's expense.
func (s *ExpenseService) Delete(ctx context.Context, caller *models.User, id int64) error {
	expense, err := s.load(ctx, caller, id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteExpense(ctx, expense.ID); err != nil {
		return err
	}

	s.logger.Info("expense deleted", "expense_id", expense.ID, "user_id", caller.ID)
	return nil
}

// load fetches the expense and enforces the existence-then-ownership check
// shared by Get, Update and Delete.
func (s *ExpenseService) load(ctx context.Context, caller *models.User, id int64) (*models.Expense, error) {
	expense, err := s.store.GetExpense(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}
	if expense.OwnerID != caller.ID {
		return nil, ErrNotExpenseOwner
	}
	return expense, nil
}
