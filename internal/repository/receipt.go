// Package repository holds persistence contracts for receipt metadata.
// Implementations live in subpackages.
package repository

import (
	"context"
	"errors"

	"receiptapi/internal/model"
)

// ErrNotFound is returned when no row matches the requested id.
var ErrNotFound = errors.New("record not found")

// ReceiptRepository persists receipt metadata. It carries no business rules.
type ReceiptRepository interface {
	// Create inserts r and returns the row as stored.
	Create(ctx context.Context, r *model.Receipt) (*model.Receipt, error)

	// FindByID returns ErrNotFound when the id is unknown.
	FindByID(ctx context.Context, id string) (*model.Receipt, error)

	// List returns one page, newest first, with the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Receipt], error)

	// Delete removes a row. Missing rows are not an error.
	Delete(ctx context.Context, id string) error
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is one page of T plus the unpaginated total.
type PageResult[T any] struct {
	Items []T
	Total int
}
