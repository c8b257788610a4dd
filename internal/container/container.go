package container

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"pokedex/browser/internal/client"
	"pokedex/browser/internal/config"
	"pokedex/browser/internal/domain"
	"pokedex/browser/internal/proxy"
	"pokedex/browser/internal/screen"
	"pokedex/browser/internal/service"
	"pokedex/browser/internal/state"
	"pokedex/browser/internal/web"
)

// Container holds all initialized components
type Container struct {
	Config         *config.Config
	Client         client.CatalogClient
	Service        *service.Service
	SelectionStore state.SelectionStore
	Sessions       *screen.Sessions
	Server         *web.Server

	redis *redis.Client
}

// New creates a new container with all dependencies initialized
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	proxySupplier := proxy.NewProxySupplier(ctx, cfg.Catalog.Proxies, cfg.Catalog.BaseURL)

	catalogClient := client.NewCatalogClient(cfg.Catalog, proxySupplier)
	container.Client = catalogClient

	container.Service = service.NewService(catalogClient, cfg.Catalog.Language, cfg.Catalog.MaxWorkers)

	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})

		// Test connection
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			rdb.Close()
			catalogClient.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}

		log.Info("✅ Connected to Redis successfully")

		container.redis = rdb
		container.SelectionStore = state.NewRedisSelectionStore(rdb, cfg.Server.SessionTTL)
	} else {
		container.SelectionStore = state.NewMemorySelectionStore()
	}

	container.Sessions = screen.NewSessions(container.Service, container.PageSizes(), container.SelectionStore, cfg.Server.SessionTTL)
	container.Server = web.New(container.Sessions, container.Service, container.PageSizes())

	return container, nil
}

// PageSizes returns the configured list page sizes
func (c *Container) PageSizes() domain.PageSizes {
	return domain.PageSizes{
		Initial:     c.Config.Pagination.InitialPageSize,
		Incremental: c.Config.Pagination.IncrementalPageSize,
	}
}

// NewListScreen creates a list screen outside of any web session
func (c *Container) NewListScreen() *screen.ListScreen {
	return screen.NewListScreen(c.Service, c.PageSizes())
}

// NewDetailScreen creates a detail screen loader
func (c *Container) NewDetailScreen() *screen.DetailScreen {
	return screen.NewDetailScreen(c.Service)
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Info("Shutting down container...")

	if err := c.Client.Close(); err != nil {
		log.Warnf("Failed to close catalog client: %v", err)
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Warnf("Failed to close redis: %v", err)
		}
	}

	log.Info("Container shut down successfully")
	return nil
}
