package di

import (
	"github.com/redis/go-redis/v9"

	"github.com/anna-pye/myeventlane-v2-sub000/internal/clock"
	"github.com/anna-pye/myeventlane-v2-sub000/internal/events"
	"github.com/anna-pye/myeventlane-v2-sub000/internal/handler"
	"github.com/anna-pye/myeventlane-v2-sub000/internal/repository"
	"github.com/anna-pye/myeventlane-v2-sub000/internal/service"
	"github.com/anna-pye/myeventlane-v2-sub000/pkg/config"
	"github.com/anna-pye/myeventlane-v2-sub000/pkg/database"
	"github.com/anna-pye/myeventlane-v2-sub000/pkg/logger"
)

// Container holds all dependencies for the booking engine
type Container struct {
	// Infrastructure
	DB        *database.PostgresDB
	Redis     *redis.Client
	Publisher events.Publisher

	// Repositories
	EventRepo    repository.EventRepository
	ProductRepo  repository.ProductRepository
	ConfigRepo   repository.TicketTypeConfigRepository
	Availability *repository.RedisAvailabilityRepository

	// Services
	ModeService       service.ModeService
	ProductService    service.ProductService
	TicketTypeService service.TicketTypeService
	EventTypeService  service.EventTypeService

	// Handlers
	HealthHandler *handler.HealthHandler
	EventHandler  *handler.EventHandler
	VendorHandler *handler.VendorHandler
}

// ContainerConfig contains infrastructure for building the container
type ContainerConfig struct {
	DB        *database.PostgresDB
	Redis     *redis.Client
	Publisher events.Publisher
	Config    *config.Config
	Logger    *logger.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:        cfg.DB,
		Redis:     cfg.Redis,
		Publisher: cfg.Publisher,
	}
	if c.Publisher == nil {
		c.Publisher = events.NoopPublisher{}
	}

	clk := clock.NewSystem()
	storeID := cfg.Config.Commerce.StoreID
	currency := cfg.Config.Commerce.DefaultCurrency

	// Repositories
	c.EventRepo = repository.NewPostgresEventRepository(c.DB.Pool)
	c.ProductRepo = repository.NewPostgresProductRepository(c.DB.Pool)
	c.ConfigRepo = repository.NewPostgresTicketTypeConfigRepository(c.DB.Pool)
	c.Availability = repository.NewRedisAvailabilityRepository(c.Redis)

	// Services
	c.ModeService = service.NewModeService(c.ProductRepo, c.Availability, clk, cfg.Logger)
	c.ProductService = service.NewProductService(
		c.EventRepo, c.ProductRepo, c.ConfigRepo, c.Publisher, clk, cfg.Logger, storeID, currency)
	c.TicketTypeService = service.NewTicketTypeService(
		c.EventRepo, c.ProductRepo, c.ConfigRepo, c.Publisher, clk, cfg.Logger, storeID, currency)
	c.EventTypeService = service.NewEventTypeService(c.ModeService)

	// Handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Redis)
	c.EventHandler = handler.NewEventHandler(c.EventRepo, c.ModeService, c.EventTypeService)
	c.VendorHandler = handler.NewVendorHandler(
		c.EventRepo, c.ConfigRepo, c.ModeService, c.ProductService, c.TicketTypeService)

	return c
}
