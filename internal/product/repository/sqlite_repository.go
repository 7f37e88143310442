package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ridloal/inventory-manager/internal/platform/logger"
	"github.com/ridloal/inventory-manager/internal/product/domain"
)

type sqliteProductRepository struct {
	db *sql.DB
}

// NewSQLiteProductRepository wraps an embedded store opened by
// database.OpenSQLite. Identifiers are assigned here since sqlite has no
// uuid default.
func NewSQLiteProductRepository(db *sql.DB) ProductRepository {
	return &sqliteProductRepository{db: db}
}

func (r *sqliteProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	// rowid breaks ties: sqlite timestamps are second-granular, and creation
	// order must survive same-second inserts.
	query := `SELECT id, name, category, price, quantity, description, created_at, updated_at
              FROM products ORDER BY created_at DESC, rowid DESC`
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
	return products, rows.Err()
}

func (r *sqliteProductRepository) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT id, name, category, price, quantity, description, created_at, updated_at
              FROM products WHERE id = ?`
	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		logger.Error("GetProductByID: query failed", err)
		return nil, err
	}
	return p, nil
}

func (r *sqliteProductRepository) CreateProduct(ctx context.Context, p *domain.Product) error {
	query := `INSERT INTO products (id, name, category, price, quantity, description, created_at, updated_at)
              VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	p.ID = uuid.NewString()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, nullString(p.Category), p.Price, p.Quantity, nullString(p.Description), p.CreatedAt, p.UpdatedAt)
	if err != nil {
		logger.Error("CreateProduct: insert failed", err)
		return err
	}
	return nil
}

func (r *sqliteProductRepository) UpdateProduct(ctx context.Context, p *domain.Product) error {
	query := `UPDATE products
              SET name = ?, category = ?, price = ?, quantity = ?, description = ?, updated_at = ?
              WHERE id = ?`
	p.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, query,
		p.Name, nullString(p.Category), p.Price, p.Quantity, nullString(p.Description), p.UpdatedAt, p.ID)
	if err != nil {
		logger.Error("UpdateProduct: update failed", err)
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	var createdAt time.Time
	if err := r.db.QueryRowContext(ctx, `SELECT created_at FROM products WHERE id = ?`, p.ID).Scan(&createdAt); err == nil {
		p.CreatedAt = createdAt
	}
	return nil
}

func (r *sqliteProductRepository) DeleteProduct(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		logger.Error("DeleteProduct: delete failed", err)
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}
