package web

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ridloal/plant-catalog/internal/platform/logger"
	"github.com/robfig/cron/v3"
)

const refreshTimeout = 10 * time.Second

type CategorySource interface {
	ListCategories(ctx context.Context) ([]string, error)
}

// CategoryCache holds the dropdown categories. A cron job refreshes it; an
// empty cache is filled on demand.
type CategoryCache struct {
	source    CategorySource
	mu        sync.RWMutex
	items     []string
	scheduler *cron.Cron
}

func NewCategoryCache(source CategorySource) *CategoryCache {
	return &CategoryCache{source: source}
}

func (c *CategoryCache) Refresh(ctx context.Context) error {
	categories, err := c.source.ListCategories(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.items = append([]string(nil), categories...)
	c.mu.Unlock()
	return nil
}

// Categories returns the cached list, fetching it live when the cache is empty.
// A failed fetch yields an empty list so the page still renders.
func (c *CategoryCache) Categories(ctx context.Context) []string {
	c.mu.RLock()
	items := c.items
	c.mu.RUnlock()
	if len(items) > 0 {
		return append([]string(nil), items...)
	}

	if err := c.Refresh(ctx); err != nil {
		logger.Error("CategoryCache: live fetch failed", err)
		return []string{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string{}, c.items...)
}

func (c *CategoryCache) Invalidate() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}

// refreshParser accepts standard five-field specs, an optional leading
// seconds field, and descriptors such as "@every 1m".
var refreshParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// StartRefresh schedules Refresh on spec, e.g. "@every 1m" or "*/5 * * * *".
func (c *CategoryCache) StartRefresh(spec string) error {
	scheduler := cron.New(cron.WithParser(refreshParser))
	_, err := scheduler.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		if err := c.Refresh(ctx); err != nil {
			logger.Error("CategoryCache: scheduled refresh failed", err)
			return
		}
		logger.Debug("CategoryCache: refreshed")
	})
	if err != nil {
		return fmt.Errorf("invalid category refresh spec %q: %w", spec, err)
	}
	scheduler.Start()
	c.scheduler = scheduler
	logger.Info("Category refresh scheduled with spec '%s'", spec)
	return nil
}

func (c *CategoryCache) Stop() {
	if c.scheduler != nil {
		<-c.scheduler.Stop().Done()
	}
}
