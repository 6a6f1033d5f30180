package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Lexv0lk/room-shop/internal/store/domain"
	"github.com/go-redis/redis/v8"
)

const shopMetadataKey = "room-shop:catalog:shop-metadata"

type Settings struct {
	Addr     string        `envconfig:"ADDR" default:""`
	Password string        `envconfig:"PASSWORD" default:""`
	DB       int           `envconfig:"DB" default:"0"`
	TTL      time.Duration `envconfig:"CATALOG_TTL" default:"5m"`
}

func (s Settings) Enabled() bool {
	return s.Addr != ""
}

// NewClient connects and pings. Callers decide whether to run without a cache
// when it fails.
func NewClient(ctx context.Context, s Settings) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     s.Addr,
		Password: s.Password,
		DB:       s.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", s.Addr, err)
	}

	return client, nil
}

// CatalogCache keeps the shop metadata document as JSON. Entries never outlive
// the refresh window they describe.
type CatalogCache struct {
	client redis.Cmdable
	ttl    time.Duration
	now    func() time.Time
}

func NewCatalogCache(client redis.Cmdable, ttl time.Duration, now func() time.Time) *CatalogCache {
	return &CatalogCache{
		client: client,
		ttl:    ttl,
		now:    now,
	}
}

func (c *CatalogCache) GetShopMetadata(ctx context.Context) (domain.ShopMetadata, bool, error) {
	raw, err := c.client.Get(ctx, shopMetadataKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.ShopMetadata{}, false, nil
		}

		return domain.ShopMetadata{}, false, fmt.Errorf("failed to read cached catalog: %w", err)
	}

	var metadata domain.ShopMetadata
	if err := json.Unmarshal(raw, &metadata); err != nil {
		return domain.ShopMetadata{}, false, fmt.Errorf("failed to decode cached catalog: %w", err)
	}

	return metadata, true, nil
}

func (c *CatalogCache) SetShopMetadata(ctx context.Context, metadata domain.ShopMetadata) error {
	ttl := c.expiry(metadata)
	if ttl <= 0 {
		return nil
	}

	raw, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if err := c.client.Set(ctx, shopMetadataKey, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache catalog: %w", err)
	}

	return nil
}

func (c *CatalogCache) InvalidateShopMetadata(ctx context.Context) error {
	if err := c.client.Del(ctx, shopMetadataKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached catalog: %w", err)
	}

	return nil
}

func (c *CatalogCache) expiry(metadata domain.ShopMetadata) time.Duration {
	ttl := c.ttl
	if untilRefresh := metadata.NextRefresh.Sub(c.now()); untilRefresh < ttl {
		ttl = untilRefresh
	}

	// redis rejects sub-millisecond expirations
	if ttl < time.Millisecond {
		return 0
	}

	return ttl
}
