package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/anna-pye/myeventlane-v2-sub000/internal/clock"
	"github.com/anna-pye/myeventlane-v2-sub000/internal/domain"
	"github.com/anna-pye/myeventlane-v2-sub000/internal/events"
	"github.com/anna-pye/myeventlane-v2-sub000/internal/repository"
	"github.com/anna-pye/myeventlane-v2-sub000/pkg/logger"
)

// UntitledEventTitle is the placeholder used when a product is created
// before the event has a title.
const UntitledEventTitle = "Untitled Event"

// freeRSVPVariationTitle is the fixed title of the zero-price variation.
const freeRSVPVariationTitle = "Free RSVP"

// productService implements the ProductService interface
type productService struct {
	eventRepo   repository.EventRepository
	productRepo repository.ProductRepository
	configRepo  repository.TicketTypeConfigRepository
	publisher   events.Publisher
	clk         clock.Clock
	log         *logger.Logger
	storeID     string
	currency    string
}

// NewProductService creates a new ProductService. storeID and currency
// identify the default commerce store used for generated products.
func NewProductService(
	eventRepo repository.EventRepository,
	productRepo repository.ProductRepository,
	configRepo repository.TicketTypeConfigRepository,
	publisher events.Publisher,
	clk clock.Clock,
	log *logger.Logger,
	storeID, currency string,
) ProductService {
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	return &productService{
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

// buildRSVPProduct assembles the zero-price product+variation pair.
func (s *productService) buildRSVPProduct(title string, eventID *string) *domain.Product {
	if title == "" {
		title = UntitledEventTitle
	}
	now := s.clk.Now()
	productID := uuid.New().String()
	skuEvent := "new"
	if eventID != nil {
		skuEvent = *eventID
	}
	return &domain.Product{
		ID:        productID,
		EventID:   eventID,
		StoreID:   s.storeID,
		Title:     domain.VariationTitle(title, "RSVP"),
		Published: true,
		Variations: []domain.Variation{{
			ID:        uuid.New().String(),
			ProductID: productID,
			SKU:       domain.GenerateSKU(skuEvent, "rsvp"),
			Title:     freeRSVPVariationTitle,
			Price:     0,
			Currency:  s.currency,
			Published: true,
			CreatedAt: now,
			UpdatedAt: now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// EnsureRSVPProduct guarantees an rsvp-only event has its zero-price
// product. Events flagged paid, both, or external are left alone.
// Idempotent: an existing published product is returned unchanged.
func (s *productService) EnsureRSVPProduct(ctx context.Context, event *domain.Event) (*domain.Product, error) {
	if event == nil || event.BookingType != domain.BookingTypeRSVP {
		return nil, nil
	}

	if event.HasProduct() {
		product, err := s.productRepo.GetByID(ctx, *event.ProductID)
		if err != nil {
			return nil, fmt.Errorf("load linked product: %w", err)
		}
		if product != nil && product.Published {
			return product, nil
		}
	}

	if s.storeID == "" {
		return nil, domain.ErrNoStoreConfigured
	}

	product := s.buildRSVPProduct(event.Title, &event.ID)
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create rsvp product: %w", err)
	}
	if err := s.eventRepo.SetProductID(ctx, event.ID, product.ID); err != nil {
		return nil, fmt.Errorf("link rsvp product: %w", err)
	}
	event.ProductID = &product.ID

	s.log.InfoContext(ctx, "created rsvp product",
		zap.String("event_id", event.ID), zap.String("product_id", product.ID))
	s.publisher.Publish(ctx, events.TopicRSVPProductCreated, event.ID, product)
	return product, nil
}

// CreateRSVPProductForNewEvent creates the product+variation pair
// before the event itself has been persisted, sidestepping the
// validation cycle where the event needs a product and the product
// wants an event reference. The back-reference is attached later by
// SyncProductToEvent.
func (s *productService) CreateRSVPProductForNewEvent(ctx context.Context, title string) (*domain.Product, error) {
	if s.storeID == "" {
		return nil, domain.ErrNoStoreConfigured
	}
	product := s.buildRSVPProduct(title, nil)
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create rsvp product: %w", err)
	}
	return product, nil
}

// SyncProductToEvent reconciles the product link on every event save.
// For rsvp events it repairs a drifted back-reference; for paid/both
// events with nothing configured it returns an advisory warning. The
// event save succeeds regardless.
func (s *productService) SyncProductToEvent(ctx context.Context, event *domain.Event) ([]string, error) {
	if event == nil {
		return nil, nil
	}

	if event.BookingType == domain.BookingTypeRSVP && event.HasProduct() {
		product, err := s.productRepo.GetByID(ctx, *event.ProductID)
		if err != nil {
			s.log.WarnContext(ctx, "product sync skipped: load failed",
				zap.String("event_id", event.ID), zap.Error(err))
			return nil, nil
		}
		if product != nil && (product.EventID == nil || *product.EventID != event.ID) {
			if err := s.productRepo.SetEventID(ctx, product.ID, event.ID); err != nil {
				s.log.WarnContext(ctx, "failed to repair product back-reference",
					zap.String("event_id", event.ID), zap.String("product_id", product.ID), zap.Error(err))
			}
		}
		return nil, nil
	}

	if event.TicketCapable() && !event.HasProduct() {
		configs, err := s.configRepo.ListByEvent(ctx, event.ID)
		if err != nil {
			s.log.WarnContext(ctx, "product sync skipped: config list failed",
				zap.String("event_id", event.ID), zap.Error(err))
			return nil, nil
		}
		if len(configs) == 0 {
			return []string{"Please link a ticket product or define ticket types for this event."}, nil
		}
	}
	return nil, nil
}

// IsAutoGeneratedRSVPProduct reports the auto-product invariant:
// exactly one variation priced at exactly zero.
func (s *productService) IsAutoGeneratedRSVPProduct(product *domain.Product) bool {
	if product == nil {
		return false
	}
	return product.IsAutoGeneratedRSVP()
}
