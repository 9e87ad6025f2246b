package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anna-pye/myeventlane-v2-sub000/internal/domain"
)

// eventColumns defines the columns to select for events
const eventColumns = `id, tenant_id, vendor_id, title,
	COALESCE(booking_type, '') as booking_type,
	product_id, COALESCE(external_url, '') as external_url,
	COALESCE(capacity, 0) as capacity,
	start_time, end_time, published, created_at, updated_at, deleted_at`

// PostgresEventRepository implements EventRepository using PostgreSQL
type PostgresEventRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEventRepository creates a new PostgresEventRepository
func NewPostgresEventRepository(pool *pgxpool.Pool) *PostgresEventRepository {
	return &PostgresEventRepository{pool: pool}
}

// scanEvent scans a row into an Event struct
func (r *PostgresEventRepository) scanEvent(row pgx.Row) (*domain.Event, error) {
	event := &domain.Event{}
	err := row.Scan(
		&event.ID,
		&event.TenantID,
		&event.VendorID,
		&event.Title,
		&event.BookingType,
		&event.ProductID,
		&event.ExternalURL,
		&event.Capacity,
		&event.StartTime,
		&event.EndTime,
		&event.Published,
		&event.CreatedAt,
		&event.UpdatedAt,
		&event.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return event, nil
}

// GetByID retrieves an event by ID
func (r *PostgresEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 AND deleted_at IS NULL`
	return r.scanEvent(queryTarget(ctx, r.pool).QueryRow(ctx, query, id))
}

// Create inserts a new event
func (r *PostgresEventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (id, tenant_id, vendor_id, title, booking_type, product_id,
			external_url, capacity, start_time, end_time, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := queryTarget(ctx, r.pool).Exec(ctx, query,
		event.ID,
		event.TenantID,
		event.VendorID,
		event.Title,
		event.BookingType,
		event.ProductID,
		event.ExternalURL,
		event.Capacity,
		event.StartTime,
		event.EndTime,
		event.Published,
		event.CreatedAt,
		event.UpdatedAt,
	)
	return err
}

// Update updates an event's mutable fields
func (r *PostgresEventRepository) Update(ctx context.Context, event *domain.Event) error {
	query := `
		UPDATE events
		SET title = $2, booking_type = $3, product_id = $4, external_url = $5,
			capacity = $6, start_time = $7, end_time = $8, published = $9, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`
	_, err := queryTarget(ctx, r.pool).Exec(ctx, query,
		event.ID,
		event.Title,
		event.BookingType,
		event.ProductID,
		event.ExternalURL,
		event.Capacity,
		event.StartTime,
		event.EndTime,
		event.Published,
	)
	return err
}

// SetProductID links a commerce product to an event
func (r *PostgresEventRepository) SetProductID(ctx context.Context, eventID, productID string) error {
	query := `UPDATE events SET product_id = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := queryTarget(ctx, r.pool).Exec(ctx, query, eventID, productID)
	return err
}
