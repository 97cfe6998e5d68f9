package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"expenses/internal/models"
	"expenses/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "expenses-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestUserStorage(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateUser assigns an id", func(t *testing.T) {
		user := &models.User{Username: "alice123", PasswordHash: "hash"}
		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
		if user.ID == 0 {
			t.Error("Expected user ID to be assigned")
		}
		if user.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		err := store.CreateUser(ctx, &models.User{Username: "alice123", PasswordHash: "other"})
		if !errors.Is(err, storage.ErrDuplicateUsername) {
			t.Errorf("CreateUser error = %v, want ErrDuplicateUsername", err)
		}
	})

	t.Run("GetUserByUsername retrieves the row", func(t *testing.T) {
		user, err := store.GetUserByUsername(ctx, "alice123")
		if err != nil {
			t.Fatalf("GetUserByUsername failed: %v", err)
		}
		if user == nil {
			t.Fatal("Expected a user, got nil")
		}
		if user.PasswordHash != "hash" {
			t.Errorf("PasswordHash = %q, want %q", user.PasswordHash, "hash")
		}
	})

	t.Run("GetUserByUsername returns nil for missing user", func(t *testing.T) {
		user, err := store.GetUserByUsername(ctx, "nobody")
		if err != nil {
			t.Fatalf("GetUserByUsername failed: %v", err)
		}
		if user != nil {
			t.Errorf("Expected nil, got %+v", user)
		}
	})

	t.Run("GetUserByID retrieves the row", func(t *testing.T) {
		created := &models.User{Username: "bob4567", PasswordHash: "hash"}
		if err := store.CreateUser(ctx, created); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		user, err := store.GetUserByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if user == nil || user.Username != "bob4567" {
			t.Errorf("Got %+v, want bob4567", user)
		}
	})
}

func TestExpenseStorage(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	owner := &models.User{Username: "alice123", PasswordHash: "hash"}
	other := &models.User{Username: "bob4567", PasswordHash: "hash"}
	for _, u := range []*models.User{owner, other} {
		if err := store.CreateUser(ctx, u); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
	}

	t.Run("CreateExpense assigns an id", func(t *testing.T) {
		expense := &models.Expense{Title: "Coffee", Amount: 3.5, OwnerID: owner.ID}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
		if expense.ID == 0 {
			t.Error("Expected expense ID to be assigned")
		}
	})

	t.Run("GetExpense retrieves the row", func(t *testing.T) {
		created := &models.Expense{Title: "Lunch", Amount: 12.99, OwnerID: owner.ID}
		if err := store.CreateExpense(ctx, created); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}

		expense, err := store.GetExpense(ctx, created.ID)
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		if expense == nil {
			t.Fatal("Expected an expense, got nil")
		}
		if expense.Title != "Lunch" || expense.Amount != 12.99 || expense.OwnerID != owner.ID {
			t.Errorf("Got %+v", expense)
		}
	})

	t.Run("GetExpense returns nil for missing row", func(t *testing.T) {
		expense, err := store.GetExpense(ctx, 9999)
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		if expense != nil {
			t.Errorf("Expected nil, got %+v", expense)
		}
	})

	t.Run("ListExpensesByOwner is scoped and ordered", func(t *testing.T) {
		foreign := &models.Expense{Title: "Not yours", Amount: 1, OwnerID: other.ID}
		if err := store.CreateExpense(ctx, foreign); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}

		expenses, err := store.ListExpensesByOwner(ctx, owner.ID)
		if err != nil {
			t.Fatalf("ListExpensesByOwner failed: %v", err)
		}
		for i, e := range expenses {
			if e.OwnerID != owner.ID {
				t.Errorf("expense %d has owner %d, want %d", e.ID, e.OwnerID, owner.ID)
			}
			if i > 0 && expenses[i-1].ID > e.ID {
				t.Error("expenses not in insertion order")
			}
		}
	})

	t.Run("ListExpensesByOwner returns empty slice", func(t *testing.T) {
		empty := &models.User{Username: "carol99", PasswordHash: "hash"}
		if err := store.CreateUser(ctx, empty); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		expenses, err := store.ListExpensesByOwner(ctx, empty.ID)
		if err != nil {
			t.Fatalf("ListExpensesByOwner failed: %v", err)
		}
		if expenses == nil {
			t.Error("Expected empty slice, got nil")
		}
		if len(expenses) != 0 {
			t.Errorf("Expected 0 expenses, got %d", len(expenses))
		}
	})

	t.Run("UpdateExpense persists changes", func(t *testing.T) {
		expense := &models.Expense{Title: "Before", Amount: 1, OwnerID: owner.ID}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}

		expense.Title = "After"
		expense.Amount = 2.5
		if err := store.UpdateExpense(ctx, expense); err != nil {
			t.Fatalf("UpdateExpense failed: %v", err)
		}

		got, err := store.GetExpense(ctx, expense.ID)
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		if got.Title != "After" || got.Amount != 2.5 {
			t.Errorf("Got %+v", got)
		}
	})

	t.Run("DeleteExpense removes the row", func(t *testing.T) {
		expense := &models.Expense{Title: "Doomed", Amount: 1, OwnerID: owner.ID}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
		if err := store.DeleteExpense(ctx, expense.ID); err != nil {
			t.Fatalf("DeleteExpense failed: %v", err)
		}

		got, err := store.GetExpense(ctx, expense.ID)
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		if got != nil {
			t.Errorf("Expected nil after delete, got %+v", got)
		}
	})

	t.Run("deleting a user cascades to their expenses", func(t *testing.T) {
		doomed := &models.User{Username: "dave5678", PasswordHash: "hash"}
		if err := store.CreateUser(ctx, doomed); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
		expense := &models.Expense{Title: "Orphaned", Amount: 1, OwnerID: doomed.ID}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}

		if err := store.DeleteUser(ctx, doomed.ID); err != nil {
			t.Fatalf("DeleteUser failed: %v", err)
		}

		got, err := store.GetExpense(ctx, expense.ID)
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		if got != nil {
			t.Errorf("Expected cascade to delete expense, got %+v", got)
		}
	})
}
