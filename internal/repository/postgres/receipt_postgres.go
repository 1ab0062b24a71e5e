package postgres

import (
	"context"
	"database/sql"
	"errors"

	"receiptapi/internal/model"
	"receiptapi/internal/repository"
)

const receiptColumns = `id, filename, storage_path, size, content_type, seller_name, buyer_name,
		registration_no, advance_payment, amount_in_words, issued_at, created_at`

// ReceiptPostgres implements repository.ReceiptRepository with parameterized
// database/sql queries.
type ReceiptPostgres struct {
	db *sql.DB
}

func NewReceiptPostgres(db *sql.DB) *ReceiptPostgres {
	return &ReceiptPostgres{db: db}
}

var _ repository.ReceiptRepository = (*ReceiptPostgres)(nil)

type scanner interface {
	Scan(dest ...any) error
}

func scanReceipt(s scanner) (*model.Receipt, error) {
	var r model.Receipt
	if err := s.Scan(
		&r.ID,
		&r.Filename,
		&r.StoragePath,
		&r.Size,
		&r.ContentType,
		&r.SellerName,
		&r.BuyerName,
		&r.RegistrationNo,
		&r.AdvancePayment,
		&r.AmountInWords,
		&r.IssuedAt,
		&r.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &r, nil
}

func (p *ReceiptPostgres) Create(ctx context.Context, r *model.Receipt) (*model.Receipt, error) {
	const q = `
		INSERT INTO receipts (` + receiptColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + receiptColumns
	row := p.db.QueryRowContext(ctx, q,
		r.ID,
		r.Filename,
		r.StoragePath,
		r.Size,
		r.ContentType,
		r.SellerName,
		r.BuyerName,
		r.RegistrationNo,
		r.AdvancePayment,
		r.AmountInWords,
		r.IssuedAt,
		r.CreatedAt,
	)
	return scanReceipt(row)
}

func (p *ReceiptPostgres) FindByID(ctx context.Context, id string) (*model.Receipt, error) {
	const q = `SELECT ` + receiptColumns + ` FROM receipts WHERE id = $1`
	r, err := scanReceipt(p.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return r, err
}

func (p *ReceiptPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Receipt], error) {
	var total int
	if err := p.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM receipts`).Scan(&total); err != nil {
		return nil, err
	}

	const q = `
		SELECT ` + receiptColumns + `
		FROM receipts
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`
	rows, err := p.db.QueryContext(ctx, q, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Receipt, 0)
	for rows.Next() {
		r, err := scanReceipt(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Receipt]{Items: items, Total: total}, nil
}

func (p *ReceiptPostgres) Delete(ctx context.Context, id string) error {
	_, err := p.db.ExecContext(ctx, `DELETE FROM receipts WHERE id = $1`, id)
	return err
}
