// Package models defines the core domain types for the expenses API.
//
// Relationships are modeled as one-directional foreign-key references
// (Expense.OwnerID); there are no in-memory back-references. Lookups by
// owner go through explicit store queries instead.
package models
