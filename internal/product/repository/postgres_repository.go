package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq" // Untuk pq.Error
	"github.com/ridloal/inventory-manager/internal/platform/logger"
	"github.com/ridloal/inventory-manager/internal/product/domain"
)

const pgCheckViolation = "23514"

type postgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) ProductRepository {
	return &postgresProductRepository{db: db}
}

func (r *postgresProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT id, name, category, price, quantity, description, created_at, updated_at
              FROM products ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("ListProducts: query failed", err)
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			logger.Error("ListProducts: scan failed", err)
			return nil, err
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		logger.Error("ListProducts: rows iteration error", err)
		return nil, err
	}
	return products, nil
}

func (r *postgresProductRepository) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT id, name, category, price, quantity, description, created_at, updated_at
              FROM products WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)
	p, err := scanProduct(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		logger.Error("GetProductByID: query failed", err)
		return nil, err
	}
	return p, nil
}

func (r *postgresProductRepository) CreateProduct(ctx context.Context, p *domain.Product) error {
	query := `INSERT INTO products (name, category, price, quantity, description, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at`
	now := time.Now()

	err := r.db.QueryRowContext(ctx, query,
		p.Name, nullString(p.Category), p.Price, p.Quantity, nullString(p.Description), now, now,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if pqErr := (*pq.Error)(nil); errors.As(err, &pqErr) && pqErr.Code == pgCheckViolation {
			logger.Warn("CreateProduct: check constraint rejected values")
		}
		logger.Error("CreateProduct: insert failed", err)
		return err
	}
	return nil
}

func (r *postgresProductRepository) UpdateProduct(ctx context.Context, p *domain.Product) error {
	query := `UPDATE products
              SET name = $1, category = $2, price = $3, quantity = $4, description = $5, updated_at = $6
              WHERE id = $7
              RETURNING created_at, updated_at`
	p.UpdatedAt = time.Now()

	err := r.db.QueryRowContext(ctx, query,
		p.Name, nullString(p.Category), p.Price, p.Quantity, nullString(p.Description), p.UpdatedAt, p.ID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProductNotFound
		}
		logger.Error("UpdateProduct: update failed", err)
		return err
	}
	return nil
}

func (r *postgresProductRepository) DeleteProduct(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		logger.Error("DeleteProduct: delete failed", err)
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		logger.Error("DeleteProduct: rows affected failed", err)
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

type scanFunc func(dest ...interface{}) error

func scanProduct(scan scanFunc) (*domain.Product, error) {
	var p domain.Product
	var category, description sql.NullString
	var price sql.NullFloat64
	var quantity sql.NullInt64
	if err := scan(&p.ID, &p.Name, &category, &price, &quantity, &description, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	// Price and quantity are numeric at read time regardless of how an older
	// row was stored.
	p.Price = price.Float64
	p.Quantity = int(quantity.Int64)
	if category.Valid {
		p.Category = &category.String
	}
	if description.Valid {
		p.Description = &description.String
	}
	return &p, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
