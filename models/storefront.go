// ════════════════════════════════════════════════════════════
// STOREFRONT MODELS (catalog rows + search payloads)
// ════════════════════════════════════════════════════════════

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductRow is the Postgres shape of a catalog product. Nested attribute
// lists live in JSONB columns; the category relation is flattened into the
// wire model when rows are loaded into the snapshot.
type ProductRow struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"not null;index"`
	Description string    `gorm:"not null;default:''"`

	ActualPrice   float64 `gorm:"type:numeric(12,2);not null;check:actual_price >= 0"`
	DiscountPrice float64 `gorm:"type:numeric(12,2);not null;check:discount_price >= 0"`

	CategoryID uuid.UUID `gorm:"type:uuid;not null;index:idx_products_category"`
	Brand      string    `gorm:"not null;default:'';index"`
	Type       string    `gorm:"not null;default:''"`
	Material   string    `gorm:"not null;default:''"`

	Colors StringList `gorm:"type:jsonb;not null;default:'[]'"`
	Size   StringList `gorm:"type:jsonb;not null;default:'[]'"`

	Processor       string `gorm:"not null;default:''"`
	RAM             string `gorm:"column:ram;not null;default:''"`
	DisplaySize     string `gorm:"not null;default:''"`
	OperatingSystem string `gorm:"not null;default:''"`
	Capacity        string `gorm:"not null;default:''"`

	Features       StringList        `gorm:"type:jsonb;not null;default:'[]'"`
	Specifications SpecificationList `gorm:"type:jsonb;not null;default:'[]'"`
	Images         StringList        `gorm:"type:jsonb;not null;default:'[]'"`

	BestSeller   bool `gorm:"not null;default:false"`
	NewArrival   bool `gorm:"not null;default:false"`
	Stock        int  `gorm:"not null;default:0"`
	SoldQuantity int  `gorm:"not null;default:0;index:idx_products_sold,sort:desc"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *ProductRow) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (ProductRow) TableName() string {
	return "products"
}

// ToProduct flattens the row into the storefront wire model. categoryName
// comes from the joined categories row and may be empty when the category
// was deleted out from under the product.
func (p *ProductRow) ToProduct(categoryName string) Product {
	out := Product{
		ID:              p.ID.String(),
		Title:           p.Title,
		Description:     p.Description,
		ActualPrice:     p.ActualPrice,
		DiscountPrice:   p.DiscountPrice,
		Brand:           p.Brand,
		Type:            p.Type,
		Material:        p.Material,
		Colors:          p.Colors,
		Size:            p.Size,
		Processor:       p.Processor,
		RAM:             p.RAM,
		DisplaySize:     p.DisplaySize,
		OperatingSystem: p.OperatingSystem,
		Capacity:        p.Capacity,
		Features:        p.Features,
		Specifications:  p.Specifications,
		Images:          p.Images,
		BestSeller:      p.BestSeller,
		NewArrival:      p.NewArrival,
		Stock:           p.Stock,
		SoldQuantity:    p.SoldQuantity,
	}
	if p.CategoryID != uuid.Nil {
		out.CategoryID = &NameRef{ID: p.CategoryID.String(), Name: categoryName}
	}
	return out
}

// SearchResponse is the payload of GET /store/product/search: one page of
// filtered products plus the facet metadata derived from the working
// collection.
type SearchResponse struct {
	Products   []Product      `json:"products"`
	Facets     *FacetMetadata `json:"facets,omitempty"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
}

// SessionStateResponse reports the committed state of a filter session and
// whether the last push actually changed it.
type SessionStateResponse struct {
	SessionID string      `json:"sessionId"`
	State     FilterState `json:"state"`
	Changed   bool        `json:"changed"`
	Page      int         `json:"page"`
}
