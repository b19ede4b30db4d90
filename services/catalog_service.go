package services

import (
	"context"
	"encoding/json"

	catalog_cache "github.com/Anvogue-Ecommerce/anvogue-storefront-backend/cache"
	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/config"
	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/models"
	log "github.com/sirupsen/logrus"
)

// CatalogService loads the product collection out of Postgres into the
// in-process snapshot the filter engine works against. Reads go through
// the snapshot; only a cache miss touches the database.
type CatalogService struct{}

func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

// Snapshot returns a fresh catalog snapshot, loading it from Postgres when
// the cached one is missing or expired. When the refresh fails, an expired
// snapshot is served instead: stale products beat an empty storefront.
func (s *CatalogService) Snapshot(ctx context.Context) (*catalog_cache.Snapshot, error) {
	if snap, ok := catalog_cache.Get(); ok {
		return snap, nil
	}

	snap, err := s.reload(ctx)
	if err != nil {
		log.Errorf("[catalog] snapshot reload failed: %v", err)
		if stale, ok := catalog_cache.Stale(); ok {
			log.Warn("[catalog] serving stale snapshot")
			return stale, nil
		}
		return nil, err
	}
	return snap, nil
}

// Products returns the full working collection.
func (s *CatalogService) Products(ctx context.Context) ([]models.Product, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Products, nil
}

// ProductsByCategory returns the server-side category slice for
// GET /store/product/category/:categoryId. The id matches either the
// category reference id or its name, mirroring what clients send.
func (s *CatalogService) ProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Product, 0)
	for i := range snap.Products {
		p := &snap.Products[i]
		if p.CategoryID != nil && p.CategoryID.ID == categoryID {
			out = append(out, *p)
			continue
		}
		if p.CategoryName() == categoryID {
			out = append(out, *p)
		}
	}
	return out, nil
}

// ProductByID returns a single product, nil when absent.
func (s *CatalogService) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for i := range snap.Products {
		if snap.Products[i].ID == id {
			return &snap.Products[i], nil
		}
	}
	return nil, nil
}

// Categories returns the category list. A database failure degrades to an
// empty list so facet filtering keeps working without categories.
func (s *CatalogService) Categories(ctx context.Context) []models.Category {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		log.Errorf("[catalog] category fetch failed: %v", err)
		return []models.Category{}
	}
	return snap.Categories
}

// reload pulls products (pgx, hot path) and categories (GORM) and installs
// a new snapshot.
func (s *CatalogService) reload(ctx context.Context) (*catalog_cache.Snapshot, error) {
	products, err := s.loadProducts()
	if err != nil {
		return nil, err
	}

	var categories []models.Category
	if err := config.CatalogGorm.WithContext(ctx).
		Where("status = ?", "Active").
		Order("name ASC").
		Find(&categories).Error; err != nil {
		// Degrade per the storefront contract: products without a
		// category list still filter fine.
		log.Errorf("[catalog] category query failed: %v", err)
		categories = []models.Category{}
	}

	log.Infof("[catalog] snapshot loaded: %d products, %d categories", len(products), len(categories))
	return catalog_cache.Set(products, categories), nil
}

const productScanQuery = `
	SELECT
		p.id::text,
		p.title,
		p.description,
		p.actual_price::float8,
		p.discount_price::float8,
		p.category_id::text,
		COALESCE(c.name, '') AS category_name,
		p.brand,
		p.type,
		p.material,
		p.colors,
		p.size,
		p.processor,
		p.ram,
		p.display_size,
		p.operating_system,
		p.capacity,
		p.features,
		p.specifications,
		p.images,
		p.best_seller,
		p.new_arrival,
		p.stock,
		p.sold_quantity
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id
	ORDER BY p.created_at DESC
`

func (s *CatalogService) loadProducts() ([]models.Product, error) {
	qctx, cancel := config.WithTimeout()
	defer cancel()

	rows, err := config.CatalogDB.Query(qctx, productScanQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		var (
			p            models.Product
			categoryID   string
			categoryName string
			colors       []byte
			size         []byte
			features     []byte
			specs        []byte
			images       []byte
		)
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description,
			&p.ActualPrice, &p.DiscountPrice,
			&categoryID, &categoryName,
			&p.Brand, &p.Type, &p.Material,
			&colors, &size,
			&p.Processor, &p.RAM, &p.DisplaySize, &p.OperatingSystem, &p.Capacity,
			&features, &specs, &images,
			&p.BestSeller, &p.NewArrival, &p.Stock, &p.SoldQuantity,
		); err != nil {
			return nil, err
		}

		p.Colors = unmarshalStrings(colors)
		p.Size = unmarshalStrings(size)
		p.Features = unmarshalStrings(features)
		p.Images = unmarshalStrings(images)
		p.Specifications = unmarshalSpecs(specs)
		if categoryID != "" {
			p.CategoryID = &models.NameRef{ID: categoryID, Name: categoryName}
		}

		products = append(products, p)
	}
	return products, rows.Err()
}

// unmarshalStrings decodes a JSONB string array; malformed data degrades
// to nil rather than failing the whole snapshot.
func unmarshalStrings(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Debugf("[catalog] bad string list in row: %v", err)
		return nil
	}
	return out
}

func unmarshalSpecs(raw []byte) []models.SpecificationGroup {
	if len(raw) == 0 {
		return nil
	}
	var out []models.SpecificationGroup
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Debugf("[catalog] bad specifications in row: %v", err)
		return nil
	}
	return out
}
