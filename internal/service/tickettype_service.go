package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/anna-pye/myeventlane-v2-sub000/internal/clock"
	"github.com/anna-pye/myeventlane-v2-sub000/internal/domain"
	"github.com/anna-pye/myeventlane-v2-sub000/internal/events"
	"github.com/anna-pye/myeventlane-v2-sub000/internal/repository"
	"github.com/anna-pye/myeventlane-v2-sub000/pkg/logger"
)

// ticketTypeService implements the TicketTypeService interface
type ticketTypeService struct {
	eventRepo   repository.EventRepository
	productRepo repository.ProductRepository
	configRepo  repository.TicketTypeConfigRepository
	publisher   events.Publisher
	clk         clock.Clock
	log         *logger.Logger
	storeID     string
	currency    string
}

// NewTicketTypeService creates a new TicketTypeService
func NewTicketTypeService(
	eventRepo repository.EventRepository,
	productRepo repository.ProductRepository,
	configRepo repository.TicketTypeConfigRepository,
	publisher events.Publisher,
	clk clock.Clock,
	log *logger.Logger,
	storeID, currency string,
) TicketTypeService {
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	return &ticketTypeService{
		eventRepo:   eventRepo,
		productRepo: productRepo,
		configRepo:  configRepo,
		publisher:   publisher,
		clk:         clk,
		log:         log,
		storeID:     storeID,
		currency:    currency,
	}
}

// SyncTicketTypesToVariations reconciles the event's ticket-type
// configs into its product's variation set. The whole pass runs under
// a per-event advisory lock and is idempotent: re-running with
// unchanged input only takes update paths. Returns false when the
// event has no paid path or no product could be obtained.
func (s *ticketTypeService) SyncTicketTypesToVariations(ctx context.Context, event *domain.Event) (bool, error) {
	if event == nil || !event.TicketCapable() {
		return false, nil
	}

	synced := false
	err := s.productRepo.WithEventLock(ctx, event.ID, func(txCtx context.Context) error {
		product, err := s.getOrCreateTicketProduct(txCtx, event)
		if err != nil || product == nil {
			// Logged, not thrown: the vendor save must still succeed.
			s.log.WarnContext(txCtx, "ticket type sync aborted: no product",
				zap.String("event_id", event.ID), zap.Error(err))
			return nil
		}

		configs, err := s.configRepo.ListByEvent(txCtx, event.ID)
		if err != nil {
			return fmt.Errorf("list ticket type configs: %w", err)
		}

		currency := s.resolveCurrency(txCtx, product)

		touched := make(map[string]bool, len(configs))
		for _, cfg := range configs {
			variationID, err := s.syncOneConfig(txCtx, event, product, cfg, currency)
			if err != nil {
				// Per-item isolation: one bad config must not abort
				// the sync of the others.
				s.log.WarnContext(txCtx, "failed to sync ticket type",
					zap.String("event_id", event.ID), zap.String("config_id", cfg.ID), zap.Error(err))
				continue
			}
			touched[variationID] = true
		}

		s.retireOrphans(txCtx, event, product, touched)
		s.repairTitles(txCtx, event, product)

		synced = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if synced {
		s.publisher.Publish(ctx, events.TopicTicketTypesSynced, event.ID, nil)
	}
	return synced, nil
}

// ReplaceTicketTypes stores a new config set then reconciles. This is
// the vendor form submit path: removed configs leave their variations
// behind, to be retired by the sync that follows. Configs resubmitted
// with a known ID keep their stored variation handle, so the sync
// updates the backing variation in place instead of recreating it.
func (s *ticketTypeService) ReplaceTicketTypes(ctx context.Context, event *domain.Event, configs []*domain.TicketTypeConfig) (bool, error) {
	if event == nil {
		return false, nil
	}
	existing, err := s.configRepo.ListByEvent(ctx, event.ID)
	if err != nil {
		return false, fmt.Errorf("list ticket type configs: %w", err)
	}
	prior := make(map[string]*domain.TicketTypeConfig, len(existing))
	for _, c := range existing {
		prior[c.ID] = c
	}

	now := s.clk.Now()
	for i, cfg := range configs {
		if cfg.ID == "" {
			cfg.ID = uuid.New().String()
		} else if prev, ok := prior[cfg.ID]; ok {
			if cfg.VariationID == nil {
				cfg.VariationID = prev.VariationID
			}
			cfg.CreatedAt = prev.CreatedAt
		}
		cfg.EventID = event.ID
		cfg.Weight = i
		if cfg.CreatedAt.IsZero() {
			cfg.CreatedAt = now
		}
		cfg.UpdatedAt = now
	}
	if err := s.configRepo.ReplaceForEvent(ctx, event.ID, configs); err != nil {
		return false, fmt.Errorf("replace ticket type configs: %w", err)
	}
	return s.SyncTicketTypesToVariations(ctx, event)
}

// getOrCreateTicketProduct reuses the linked product when present,
// otherwise creates an empty ticket product linked back to the event.
func (s *ticketTypeService) getOrCreateTicketProduct(ctx context.Context, event *domain.Event) (*domain.Product, error) {
	if event.HasProduct() {
		product, err := s.productRepo.GetByID(ctx, *event.ProductID)
		if err != nil {
			return nil, fmt.Errorf("load linked product: %w", err)
		}
		if product != nil {
			return product, nil
		}
		// Stale link; fall through and create a fresh product.
	}

	if s.storeID == "" {
		return nil, domain.ErrNoStoreConfigured
	}

	now := s.clk.Now()
	product := &domain.Product{
		ID:        uuid.New().String(),
		EventID:   &event.ID,
		StoreID:   s.storeID,
		Title:     event.Title,
		Published: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create ticket product: %w", err)
	}
	if err := s.eventRepo.SetProductID(ctx, event.ID, product.ID); err != nil {
		return nil, fmt.Errorf("link ticket product: %w", err)
	}
	event.ProductID = &product.ID
	return product, nil
}

// resolveCurrency looks up the store currency, falling back to the
// configured default when the store has none.
func (s *ticketTypeService) resolveCurrency(ctx context.Context, product *domain.Product) string {
	currency, err := s.productRepo.GetStoreCurrency(ctx, product.StoreID)
	if err != nil {
		s.log.WarnContext(ctx, "store currency lookup failed",
			zap.String("store_id", product.StoreID), zap.Error(err))
		return s.currency
	}
	if currency == "" {
		return s.currency
	}
	return currency
}

// syncOneConfig reconciles a single config into a variation and returns
// the variation ID it now points at.
func (s *ticketTypeService) syncOneConfig(ctx context.Context, event *domain.Event, product *domain.Product, cfg *domain.TicketTypeConfig, currency string) (string, error) {
	label := cfg.ResolveLabel()
	title := domain.VariationTitle(event.Title, label)

	if cfg.VariationID != nil && *cfg.VariationID != "" {
		existing, err := s.productRepo.GetVariation(ctx, *cfg.VariationID)
		if err != nil {
			return "", fmt.Errorf("load variation: %w", err)
		}
		// Guard against stale handles pointing into another product.
		if existing != nil && existing.ProductID == product.ID {
			existing.Title = title
			existing.Price = cfg.Price
			existing.Currency = currency
			existing.Published = true
			if err := s.productRepo.UpdateVariation(ctx, existing); err != nil {
				return "", fmt.Errorf("update variation: %w", err)
			}
			return existing.ID, nil
		}
	}

	now := s.clk.Now()
	variation := &domain.Variation{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		SKU:       domain.GenerateSKU(event.ID, label),
		Title:     title,
		Price:     cfg.Price,
		Currency:  currency,
		Published: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.productRepo.CreateVariation(ctx, variation); err != nil {
		return "", fmt.Errorf("create variation: %w", err)
	}
	product.Variations = append(product.Variations, *variation)
	if err := s.configRepo.SetVariationID(ctx, cfg.ID, variation.ID); err != nil {
		return "", fmt.Errorf("store variation handle: %w", err)
	}
	cfg.VariationID = &variation.ID
	return variation.ID, nil
}

// retireOrphans unpublishes variations no longer backed by a config.
// Never a hard delete: historical orders keep their references.
func (s *ticketTypeService) retireOrphans(ctx context.Context, event *domain.Event, product *domain.Product, touched map[string]bool) {
	for i := range product.Variations {
		v := &product.Variations[i]
		if touched[v.ID] || !v.Published {
			continue
		}
		if err := s.productRepo.UnpublishVariation(ctx, v.ID); err != nil {
			s.log.WarnContext(ctx, "failed to retire orphaned variation",
				zap.String("variation_id", v.ID), zap.Error(err))
			continue
		}
		v.Published = false
		s.publisher.Publish(ctx, events.TopicVariationRetired, event.ID, v.ID)
	}
}

// repairTitles re-derives the product and variation titles against the
// current event title, fixing drift after renames.
func (s *ticketTypeService) repairTitles(ctx context.Context, event *domain.Event, product *domain.Product) {
	if product.Title != event.Title {
		if err := s.productRepo.UpdateTitle(ctx, product.ID, event.Title); err != nil {
			s.log.WarnContext(ctx, "failed to retitle product",
				zap.String("product_id", product.ID), zap.Error(err))
		} else {
			product.Title = event.Title
		}
	}
	for i := range product.Variations {
		v := &product.Variations[i]
		if !strings.Contains(v.Title, domain.TitleDelimiter) {
			// Fixed titles like "Free RSVP" carry no event prefix.
			continue
		}
		want := domain.RetitleVariation(v.Title, event.Title)
		if v.Title == want {
			continue
		}
		v.Title = want
		// Title-only write: v comes from the snapshot loaded before the
		// config pass, so a full update would clobber prices edited there.
		if err := s.productRepo.UpdateVariationTitle(ctx, v.ID, want); err != nil {
			s.log.WarnContext(ctx, "failed to retitle variation",
				zap.String("variation_id", v.ID), zap.Error(err))
		}
	}
}
