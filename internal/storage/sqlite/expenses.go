package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"expenses/internal/models"
)

// CreateExpense inserts a new expense and populates its ID.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	result, err := s.db.ExecContext(ctx,
		"INSERT INTO expenses (title, amount, owner_id, created_at) VALUES (?, ?, ?, ?)",
		expense.Title, expense.Amount, expense.OwnerID, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get expense id: %w", err)
	}
	expense.ID = id

	return nil
}

// GetExpense retrieves an expense by id regardless of owner.
func (s *SQLiteStore) GetExpense(ctx context.Context, id int64) (*models.Expense, error) {
	expense := &models.Expense{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, title, amount, owner_id, created_at FROM expenses WHERE id = ?",
		id,
	).Scan(&expense.ID, &expense.Title, &expense.Amount, &expense.OwnerID, &expense.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil // Expense not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return expense, nil
}

// ListExpensesByOwner returns the given user's expenses in insertion order.
func (s *SQLiteStore) ListExpensesByOwner(ctx context.Context, ownerID int64) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, amount, owner_id, created_at FROM expenses WHERE owner_id = ? ORDER BY id",
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0)
	for rows.Next() {
		var expense models.Expense
		if err := rows.Scan(&expense.ID, &expense.Title, &expense.Amount, &expense.OwnerID, &expense.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}

// UpdateExpense persists the expense's title and amount.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE expenses SET title = ?, amount = ? WHERE id = ?",
		expense.Title, expense.Amount, expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	return nil
}

// DeleteExpense removes an expense by id.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}
