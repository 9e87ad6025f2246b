package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anna-pye/myeventlane-v2-sub000/internal/clock"
	"github.com/anna-pye/myeventlane-v2-sub000/internal/domain"
	"github.com/anna-pye/myeventlane-v2-sub000/internal/events"
	"github.com/anna-pye/myeventlane-v2-sub000/pkg/logger"
)

type syncFixture struct {
	eventRepo   *MockEventRepository
	productRepo *MockProductRepository
	configRepo  *MockTicketTypeConfigRepository
	svc         TicketTypeService
}

func newSyncFixture() *syncFixture {
	f := &syncFixture{
		eventRepo:   NewMockEventRepository(),
		productRepo: NewMockProductRepository(),
		configRepo:  NewMockTicketTypeConfigRepository(),
	}
	f.svc = NewTicketTypeService(
		f.eventRepo, f.productRepo, f.configRepo,
		events.NoopPublisher{}, clock.NewFixed(testNow), logger.NewNop(),
		"store-1", "AUD",
	)
	return f
}

func paidEvent(title string) *domain.Event {
	return &domain.Event{ID: "event-1", Title: title, BookingType: domain.BookingTypePaid}
}

func TestSyncSkipsNonTicketEvents(t *testing.T) {
	f := newSyncFixture()
	for _, bt := range []domain.BookingType{domain.BookingTypeRSVP, domain.BookingTypeExternal, ""} {
		event := &domain.Event{ID: "event-1", Title: "Gala", BookingType: bt}
		synced, err := f.svc.SyncTicketTypesToVariations(context.Background(), event)
		require.NoError(t, err)
		assert.False(t, synced, "booking type %q must not sync", bt)
	}
}

func TestSyncCreatesProductAndVariations(t *testing.T) {
	f := newSyncFixture()
	event := paidEvent("Spring Gala")
	f.eventRepo.Put(event)
	f.configRepo.Put(event.ID,
		&domain.TicketTypeConfig{ID: "cfg-1", EventID: event.ID, LabelMode: domain.LabelModePreset, PresetKey: "vip", Price: 150},
		&domain.TicketTypeConfig{ID: "cfg-2", EventID: event.ID, LabelMode: domain.LabelModeCustom, CustomLabel: "Early Bird", Price: 75},
	)

	synced, err := f.svc.SyncTicketTypesToVariations(context.Background(), event)
	require.NoError(t, err)
	require.True(t, synced)
	require.True(t, event.HasProduct(), "event must be linked to the created product")

	product, err := f.productRepo.GetByID(context.Background(), *event.ProductID)
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Spring Gala", product.Title)
	require.Len(t, product.Variations, 2)

	titles := []string{product.Variations[0].Title, product.Variations[1].Title}
	assert.Contains(t, titles, "Spring Gala – VIP")
	assert.Contains(t, titles, "Spring Gala – Early Bird")

	for _, v := range product.Variations {
		switch v.Title {
		case "Spring Gala – VIP":
			assert.Equal(t, 150.0, v.Price)
		case "Spring Gala – Early Bird":
			assert.Equal(t, 75.0, v.Price)
		}
		assert.Equal(t, "AUD", v.Currency)
		assert.True(t, v.Published)
		assert.NotEmpty(t, v.SKU)
	}
}

func TestSyncIsIdempotent(t *testing.T) {
	f := newSyncFixture()
	event := paidEvent("Spring Gala")
	f.eventRepo.Put(event)
	f.configRepo.Put(event.ID,
		&domain.TicketTypeConfig{ID: "cfg-1", EventID: event.ID, LabelMode: domain.LabelModePreset, PresetKey: "vip", Price: 150},
	)

	_, err := f.svc.SyncTicketTypesToVariations(context.Background(), event)
	require.NoError(t, err)
	first := f.productRepo.TotalVariations()

	// Unchanged input must only take update paths.
	_, err = f.svc.SyncTicketTypesToVariations(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, first, f.productRepo.TotalVariations(), "second sync must not create variations")
	assert.Equal(t, 1, f.productRepo.CreatedCount, "product must be created once")
}

func TestSyncRetiresOrphanedVariations(t *testing.T) {
	f := newSyncFixture()
	event := paidEvent("Spring Gala")
	f.eventRepo.Put(event)
	f.configRepo.Put(event.ID,
		&domain.TicketTypeConfig{ID: "cfg-1", EventID: event.ID, LabelMode: domain.LabelModePreset, PresetKey: "vip", Price: 150},
		&domain.TicketTypeConfig{ID: "cfg-2", EventID: event.ID, LabelMode: domain.LabelModePreset, PresetKey: "student", Price: 40},
	)

	_, err := f.svc.SyncTicketTypesToVariations(context.Background(), event)
	require.NoError(t, err)

	// Vendor removes the student tier.
	configs, _ := f.configRepo.ListByEvent(context.Background(), event.ID)
	f.configRepo.Put(event.ID, configs[0])

	_, err = f.svc.SyncTicketTypesToVariations(context.Background(), event)
	require.NoError(t, err)

	// Soft delete: the variation still exists, unpublished.
	assert.Equal(t, 2, f.productRepo.TotalVariations())
	assert.Equal(t, 1, f.productRepo.PublishedVariations())

	orphanID := *configs[1].VariationID
	orphan, err := f.productRepo.GetVariation(context.Background(), orphanID)
	require.NoError(t, err)
	require.NotNil(t, orphan, "retired variation must still be retrievable")
	assert.False(t, orphan.Published)
}

func TestSyncRepairsTitleDrift(t *testing.T) {
	f := newSyncFixture()
	event := paidEvent("Spring Gala")
	f.eventRepo.Put(event)
	f.configRepo.Put(event.ID,
		&domain.TicketTypeConfig{ID: "cfg-1", EventID: event.ID, LabelMode: domain.LabelModePreset, PresetKey: "vip", Price: 150},
	)

	_, err := f.svc.SyncTicketTypesToVariations(context.Background(), event)
	require.NoError(t, err)

	event.Title = "Autumn Gala"
	_, err = f.svc.SyncTicketTypesToVariations(context.Background(), event)
	require.NoError(t, err)

	product, err := f.productRepo.GetByID(context.Background(), *event.ProductID)
	require.NoError(t, err)
	assert.Equal(t, "Autumn Gala", product.Title)
	require.Len(t, product.Variations, 1)
	assert.Equal(t, "Autumn Gala – VIP", product.Variations[0].Title)
}

func TestSyncKeepsPriceEditThroughRename(t *testing.T) {
	f := newSyncFixture()
	event := paidEvent("Spring Gala")
	f.eventRepo.Put(event)
	f.configRepo.Put(event.ID,
		&domain.TicketTypeConfig{ID: "cfg-1", EventID: event.ID, LabelMode: domain.LabelModePreset, PresetKey: "vip", Price: 150},
	)

	_, err := f.svc.SyncTicketTypesToVariations(context.Background(), event)
	require.NoError(t, err)

	// Rename and reprice in the same save; the title repair pass must
	// not write the pre-edit price back.
	event.Title = "Autumn Gala"
	configs, _ := f.configRepo.ListByEvent(context.Background(), event.ID)
	configs[0].Price = 200
	_, err = f.svc.SyncTicketTypesToVariations(context.Background(), event)
	require.NoError(t, err)

	v, err := f.productRepo.GetVariation(context.Background(), *configs[0].VariationID)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "Autumn Gala – VIP", v.Title)
	assert.Equal(t, 200.0, v.Price)
	assert.True(t, v.Published)
}

func TestSyncRecreatesVariationWithStaleHandle(t *testing.T) {
	f := newSyncFixture()
	event := paidEvent("Spring Gala")
	f.eventRepo.Put(event)

	// Handle points at a variation belonging to another product.
	foreign := &domain.Product{ID: "other-prod", StoreID: "store-1", Title: "Other",
		Variations: []domain.Variation{{ID: "v-foreign", ProductID: "other-prod", Price: 10, Published: true}}}
	f.productRepo.Put(foreign)
	stale := "v-foreign"
	f.configRepo.Put(event.ID,
		&domain.TicketTypeConfig{ID: "cfg-1", EventID: event.ID, LabelMode: domain.LabelModePreset, PresetKey: "vip", Price: 150, VariationID: &stale},
	)

	_, err := f.svc.SyncTicketTypesToVariations(context.Background(), event)
	require.NoError(t, err)

	configs, _ := f.configRepo.ListByEvent(context.Background(), event.ID)
	require.NotNil(t, configs[0].VariationID)
	assert.NotEqual(t, "v-foreign", *configs[0].VariationID, "stale cross-product handle must be replaced")
}

func TestSyncUsesStoreCurrency(t *testing.T) {
	f := newSyncFixture()
	f.productRepo.SetStoreCurrency("store-1", "NZD")
	event := paidEvent("Spring Gala")
	f.eventRepo.Put(event)
	f.configRepo.Put(event.ID,
		&domain.TicketTypeConfig{ID: "cfg-1", EventID: event.ID, LabelMode: domain.LabelModePreset, PresetKey: "vip", Price: 150},
	)

	_, err := f.svc.SyncTicketTypesToVariations(context.Background(), event)
	require.NoError(t, err)

	product, _ := f.productRepo.GetByID(context.Background(), *event.ProductID)
	require.Len(t, product.Variations, 1)
	assert.Equal(t, "NZD", product.Variations[0].Currency)
}

func TestSyncToleratesPartialFailure(t *testing.T) {
	f := newSyncFixture()
	event := paidEvent("Spring Gala")
	f.eventRepo.Put(event)

	// A handle that errors on lookup must not abort the other configs.
	product := &domain.Product{ID: "prod-1", EventID: &event.ID, StoreID: "store-1", Title: event.Title, Published: true}
	f.productRepo.Put(product)
	event.ProductID = &product.ID
	f.productRepo.FailVariation = "v-broken"

	broken := "v-broken"
	f.configRepo.Put(event.ID,
		&domain.TicketTypeConfig{ID: "cfg-1", EventID: event.ID, LabelMode: domain.LabelModePreset, PresetKey: "vip", Price: 150, VariationID: &broken},
		&domain.TicketTypeConfig{ID: "cfg-2", EventID: event.ID, LabelMode: domain.LabelModePreset, PresetKey: "student", Price: 40},
	)

	synced, err := f.svc.SyncTicketTypesToVariations(context.Background(), event)
	require.NoError(t, err)
	assert.True(t, synced)
	assert.Equal(t, 1, f.productRepo.PublishedVariations(), "the healthy config must still sync")
}

func TestReplaceTicketTypesAssignsIDsAndSyncs(t *testing.T) {
	f := newSyncFixture()
	event := paidEvent("Spring Gala")
	f.eventRepo.Put(event)

	synced, err := f.svc.ReplaceTicketTypes(context.Background(), event, []*domain.TicketTypeConfig{
		{LabelMode: domain.LabelModePreset, PresetKey: "full_price", Price: 90},
	})
	require.NoError(t, err)
	assert.True(t, synced)

	configs, _ := f.configRepo.ListByEvent(context.Background(), event.ID)
	require.Len(t, configs, 1)
	assert.NotEmpty(t, configs[0].ID)
	assert.NotNil(t, configs[0].VariationID)
}

func TestReplaceTicketTypesKeepsVariationHandles(t *testing.T) {
	f := newSyncFixture()
	event := paidEvent("Spring Gala")
	f.eventRepo.Put(event)

	_, err := f.svc.ReplaceTicketTypes(context.Background(), event, []*domain.TicketTypeConfig{
		{ID: "cfg-1", LabelMode: domain.LabelModePreset, PresetKey: "vip", Price: 150},
	})
	require.NoError(t, err)
	configs, _ := f.configRepo.ListByEvent(context.Background(), event.ID)
	require.NotNil(t, configs[0].VariationID)
	firstHandle := *configs[0].VariationID

	// Resubmitting the form with the same config ID must update the
	// existing variation in place, not retire it and mint a new SKU.
	_, err = f.svc.ReplaceTicketTypes(context.Background(), event, []*domain.TicketTypeConfig{
		{ID: "cfg-1", LabelMode: domain.LabelModePreset, PresetKey: "vip", Price: 175},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, f.productRepo.TotalVariations(), "resubmit must not churn variations")
	configs, _ = f.configRepo.ListByEvent(context.Background(), event.ID)
	require.NotNil(t, configs[0].VariationID)
	assert.Equal(t, firstHandle, *configs[0].VariationID)

	v, err := f.productRepo.GetVariation(context.Background(), firstHandle)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 175.0, v.Price)
	assert.True(t, v.Published)
}
