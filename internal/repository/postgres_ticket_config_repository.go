package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anna-pye/myeventlane-v2-sub000/internal/domain"
)

// configColumns defines the columns to select for ticket type configs
const configColumns = `id, event_id, label_mode,
	COALESCE(preset_key, '') as preset_key,
	COALESCE(custom_label, '') as custom_label,
	price, COALESCE(capacity, 0) as capacity,
	variation_id, COALESCE(weight, 0) as weight, created_at, updated_at`

// PostgresTicketTypeConfigRepository implements TicketTypeConfigRepository using PostgreSQL
type PostgresTicketTypeConfigRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTicketTypeConfigRepository creates a new PostgresTicketTypeConfigRepository
func NewPostgresTicketTypeConfigRepository(pool *pgxpool.Pool) *PostgresTicketTypeConfigRepository {
	return &PostgresTicketTypeConfigRepository{pool: pool}
}

// ListByEvent returns an event's configs ordered by weight
func (r *PostgresTicketTypeConfigRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.TicketTypeConfig, error) {
	query := `SELECT ` + configColumns + ` FROM ticket_type_configs
		WHERE event_id = $1 ORDER BY weight ASC, created_at ASC`
	rows, err := queryTarget(ctx, r.pool).Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []*domain.TicketTypeConfig
	for rows.Next() {
		c := &domain.TicketTypeConfig{}
		err := rows.Scan(
			&c.ID,
			&c.EventID,
			&c.LabelMode,
			&c.PresetKey,
			&c.CustomLabel,
			&c.Price,
			&c.Capacity,
			&c.VariationID,
			&c.Weight,
			&c.CreatedAt,
			&c.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		configs = append(configs, c)
	}
	return configs, rows.Err()
}

// ReplaceForEvent replaces an event's configs in one transaction with
// exactly the set it is given. Carrying stored variation handles across
// a replace is the caller's responsibility.
func (r *PostgresTicketTypeConfigRepository) ReplaceForEvent(ctx context.Context, eventID string, configs []*domain.TicketTypeConfig) error {
	return withTx(ctx, r.pool, func(txCtx context.Context) error {
		target := queryTarget(txCtx, r.pool)
		if _, err := target.Exec(txCtx, `DELETE FROM ticket_type_configs WHERE event_id = $1`, eventID); err != nil {
			return err
		}
		insert := `
			INSERT INTO ticket_type_configs (id, event_id, label_mode, preset_key, custom_label,
				price, capacity, variation_id, weight, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`
		for _, c := range configs {
			_, err := target.Exec(txCtx, insert,
				c.ID,
				eventID,
				c.LabelMode,
				c.PresetKey,
				c.CustomLabel,
				c.Price,
				c.Capacity,
				c.VariationID,
				c.Weight,
				c.CreatedAt,
				c.UpdatedAt,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// SetVariationID stores the synced variation handle on a config
func (r *PostgresTicketTypeConfigRepository) SetVariationID(ctx context.Context, configID, variationID string) error {
	query := `UPDATE ticket_type_configs SET variation_id = $2, updated_at = NOW() WHERE id = $1`
	_, err := queryTarget(ctx, r.pool).Exec(ctx, query, configID, variationID)
	return err
}
