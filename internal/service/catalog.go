package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/entities"
)

const catalogCacheKey = "catalog:all"

func vendorCacheKey(vendorID string) string {
	return "catalog:vendor:" + vendorID
}

type ProductAPI interface {
	ListProducts(ctx context.Context) (entities.Catalog, error)
	ProductsByVendor(ctx context.Context, vendorID string) (entities.Catalog, error)
	CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	UpdateProduct(ctx context.Context, p entities.Product) error
	DeleteProduct(ctx context.Context, productID string) error
	StockLedger(ctx context.Context, productID string, page, limit int) (entities.LedgerPage, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

// catalogService fronts the upstream product endpoints with a short-lived
// cache. Writes invalidate the cached lists so screens never render a
// product that no longer matches the upstream state.
type catalogService struct {
	logger *slog.Logger
	api    ProductAPI
	cache  Cache
}

func NewCatalogService(logger *slog.Logger, api ProductAPI, cache Cache) *catalogService {
	return &catalogService{
		logger: logger.With(slog.String("service", "catalog")),
		api:    api,
		cache:  cache,
	}
}

// Catalog returns the full product list, implementing CatalogSource for
// the editor.
func (s *catalogService) Catalog(ctx context.Context) (entities.Catalog, error) {
	if data, ok := s.cache.Get(catalogCacheKey); ok {
		var catalog entities.Catalog
		if err := catalog.Unmarshal(data); err == nil {
			return catalog, nil
		}
		// corrupt entry, fall through to a fresh fetch
		s.cache.Delete(catalogCacheKey)
	}

	catalog, err := s.api.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	s.store(catalogCacheKey, catalog)
	return catalog, nil
}

// VendorInventory lists the signed-in vendor's own products.
func (s *catalogService) VendorInventory(ctx context.Context, vendorID string) (entities.Catalog, error) {
	key := vendorCacheKey(vendorID)
	if data, ok := s.cache.Get(key); ok {
		var catalog entities.Catalog
		if err := catalog.Unmarshal(data); err == nil {
			return catalog, nil
		}
		s.cache.Delete(key)
	}

	catalog, err := s.api.ProductsByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	s.store(key, catalog)
	return catalog, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	created, err := s.api.CreateProduct(ctx, p)
	if err != nil {
		return entities.Product{}, err
	}
	s.invalidate(p.VendorID)
	return created, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, p entities.Product) error {
	if err := s.api.UpdateProduct(ctx, p); err != nil {
		return err
	}
	s.invalidate(p.VendorID)
	return nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, productID, vendorID string) error {
	if err := s.api.DeleteProduct(ctx, productID); err != nil {
		return err
	}
	s.invalidate(vendorID)
	return nil
}

func (s *catalogService) StockLedger(ctx context.Context, productID string, page, limit int) (entities.LedgerPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	ledger, err := s.api.StockLedger(ctx, productID, page, limit)
	if err != nil {
		return entities.LedgerPage{}, fmt.Errorf("stock ledger unavailable: %w", err)
	}
	return ledger, nil
}

func (s *catalogService) store(key string, catalog entities.Catalog) {
	data, err := catalog.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal catalog", slog.Any("error", err))
		return
	}
	s.cache.Set(key, data)
}

func (s *catalogService) invalidate(vendorID string) {
	s.cache.Delete(catalogCacheKey)
	if vendorID != "" {
		s.cache.Delete(vendorCacheKey(vendorID))
	}
}
