package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anna-pye/myeventlane-v2-sub000/internal/domain"
)

// variationColumns defines the columns to select for variations
const variationColumns = `id, product_id, sku, title, price,
	COALESCE(currency, '') as currency, published, created_at, updated_at`

// PostgresProductRepository implements ProductRepository using PostgreSQL
type PostgresProductRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresProductRepository creates a new PostgresProductRepository
func NewPostgresProductRepository(pool *pgxpool.Pool) *PostgresProductRepository {
	return &PostgresProductRepository{pool: pool}
}

// GetByID retrieves a product with its variations loaded in order
func (r *PostgresProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT id, event_id, store_id, title, published, created_at, updated_at
		FROM products WHERE id = $1`
	product := &domain.Product{}
	err := queryTarget(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.EventID,
		&product.StoreID,
		&product.Title,
		&product.Published,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	variations, err := r.listVariations(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	product.Variations = variations
	return product, nil
}

func (r *PostgresProductRepository) listVariations(ctx context.Context, productID string) ([]domain.Variation, error) {
	query := `SELECT ` + variationColumns + ` FROM variations
		WHERE product_id = $1 ORDER BY created_at ASC, id ASC`
	rows, err := queryTarget(ctx, r.pool).Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var variations []domain.Variation
	for rows.Next() {
		var v domain.Variation
		err := rows.Scan(
			&v.ID,
			&v.ProductID,
			&v.SKU,
			&v.Title,
			&v.Price,
			&v.Currency,
			&v.Published,
			&v.CreatedAt,
			&v.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		variations = append(variations, v)
	}
	return variations, rows.Err()
}

// Create inserts a product and any attached variations
func (r *PostgresProductRepository) Create(ctx context.Context, product *domain.Product) error {
	return withTx(ctx, r.pool, func(txCtx context.Context) error {
		query := `
			INSERT INTO products (id, event_id, store_id, title, published, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`
		_, err := queryTarget(txCtx, r.pool).Exec(txCtx, query,
			product.ID,
			product.EventID,
			product.StoreID,
			product.Title,
			product.Published,
			product.CreatedAt,
			product.UpdatedAt,
		)
		if err != nil {
			return err
		}
		for i := range product.Variations {
			if err := r.CreateVariation(txCtx, &product.Variations[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// SetEventID repairs the product's back-reference to its event
func (r *PostgresProductRepository) SetEventID(ctx context.Context, productID, eventID string) error {
	query := `UPDATE products SET event_id = $2, updated_at = NOW() WHERE id = $1`
	_, err := queryTarget(ctx, r.pool).Exec(ctx, query, productID, eventID)
	return err
}

// UpdateTitle renames a product
func (r *PostgresProductRepository) UpdateTitle(ctx context.Context, productID, title string) error {
	query := `UPDATE products SET title = $2, updated_at = NOW() WHERE id = $1`
	_, err := queryTarget(ctx, r.pool).Exec(ctx, query, productID, title)
	return err
}

// GetVariation retrieves a single variation by ID
func (r *PostgresProductRepository) GetVariation(ctx context.Context, id string) (*domain.Variation, error) {
	query := `SELECT ` + variationColumns + ` FROM variations WHERE id = $1`
	v := &domain.Variation{}
	err := queryTarget(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&v.ID,
		&v.ProductID,
		&v.SKU,
		&v.Title,
		&v.Price,
		&v.Currency,
		&v.Published,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}

// CreateVariation appends a variation to its product
func (r *PostgresProductRepository) CreateVariation(ctx context.Context, v *domain.Variation) error {
	query := `
		INSERT INTO variations (id, product_id, sku, title, price, currency, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := queryTarget(ctx, r.pool).Exec(ctx, query,
		v.ID,
		v.ProductID,
		v.SKU,
		v.Title,
		v.Price,
		v.Currency,
		v.Published,
		v.CreatedAt,
		v.UpdatedAt,
	)
	return err
}

// UpdateVariation updates a variation's title, price and publish state
func (r *PostgresProductRepository) UpdateVariation(ctx context.Context, v *domain.Variation) error {
	query := `
		UPDATE variations
		SET title = $2, price = $3, currency = $4, published = $5, updated_at = NOW()
		WHERE id = $1
	`
	_, err := queryTarget(ctx, r.pool).Exec(ctx, query,
		v.ID,
		v.Title,
		v.Price,
		v.Currency,
		v.Published,
	)
	return err
}

// UpdateVariationTitle renames a variation, leaving its price and
// publish state untouched
func (r *PostgresProductRepository) UpdateVariationTitle(ctx context.Context, id, title string) error {
	query := `UPDATE variations SET title = $2, updated_at = NOW() WHERE id = $1`
	_, err := queryTarget(ctx, r.pool).Exec(ctx, query, id, title)
	return err
}

// UnpublishVariation retires a variation without deleting it, preserving
// referential integrity for historical orders
func (r *PostgresProductRepository) UnpublishVariation(ctx context.Context, id string) error {
	query := `UPDATE variations SET published = false, updated_at = NOW() WHERE id = $1`
	_, err := queryTarget(ctx, r.pool).Exec(ctx, query, id)
	return err
}

// GetStoreCurrency returns the currency code of a commerce store
func (r *PostgresProductRepository) GetStoreCurrency(ctx context.Context, storeID string) (string, error) {
	query := `SELECT COALESCE(currency, '') FROM stores WHERE id = $1`
	var currency string
	err := queryTarget(ctx, r.pool).QueryRow(ctx, query, storeID).Scan(&currency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return currency, nil
}

// WithEventLock runs fn inside a transaction holding a per-event
// advisory lock. Two concurrent reconciliations of the same event
// serialize here instead of interleaving and duplicating variations.
func (r *PostgresProductRepository) WithEventLock(ctx context.Context, eventID string, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, func(txCtx context.Context) error {
		if _, err := queryTarget(txCtx, r.pool).Exec(txCtx, `SELECT pg_advisory_xact_lock(hashtext($1))`, eventID); err != nil {
			return err
		}
		return fn(txCtx)
	})
}
