package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
)

// ═══════════════════════════════════════════════════════════
// Storefront Product Model
// ═══════════════════════════════════════════════════════════

// NameRef is a reference to a named entity (category, brand, type, material).
// Catalog payloads carry these either as an embedded object with a name field
// or as a bare string, so unmarshalling accepts both shapes.
type NameRef struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name"`
}

func (r *NameRef) UnmarshalJSON(data []byte) error {
	// Bare string shape: "Apple"
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.ID = ""
		r.Name = s
		return nil
	}

	// Embedded object shape: {"_id": "...", "name": "Apple"}
	type alias NameRef
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*r = NameRef(a)
	return nil
}

// SpecificationDetail is a single name/value attribute inside a
// specification group.
type SpecificationDetail struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SpecificationGroup is a named block of product attributes, e.g.
// {"name": "Memory", "detail": [{"name": "RAM", "value": "16GB"}]}.
type SpecificationGroup struct {
	Name   string                `json:"name"`
	Detail []SpecificationDetail `json:"detail"`
}

// Product is a catalog product as served to the storefront. Every field
// beyond id/title/pricing is optional: missing or malformed attributes
// simply contribute no facet value.
type Product struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	ActualPrice   float64 `json:"actualPrice"`
	DiscountPrice float64 `json:"discountPrice"`

	// Classification: the reference shape is preferred, the flat string is
	// the fallback when the backend did not embed the relation.
	CategoryID *NameRef `json:"categoryId,omitempty"`
	Category   string   `json:"category,omitempty"`
	BrandID    *NameRef `json:"brandId,omitempty"`
	Brand      string   `json:"brand,omitempty"`
	TypeID     *NameRef `json:"typeId,omitempty"`
	Type       string   `json:"type,omitempty"`
	MaterialID *NameRef `json:"materialId,omitempty"`
	Material   string   `json:"material,omitempty"`

	Colors []string `json:"colors,omitempty"`
	Size   []string `json:"size,omitempty"`

	Processor       string   `json:"processor,omitempty"`
	RAM             string   `json:"ram,omitempty"`
	DisplaySize     string   `json:"displaySize,omitempty"`
	OperatingSystem string   `json:"operatingSystem,omitempty"`
	Capacity        string   `json:"capacity,omitempty"`
	Features        []string `json:"features,omitempty"`

	Specifications []SpecificationGroup `json:"specifications,omitempty"`

	Images []string `json:"images,omitempty"`

	BestSeller   bool `json:"bestSeller,omitempty"`
	NewArrival   bool `json:"newArrival,omitempty"`
	Stock        int  `json:"stock"`
	SoldQuantity int  `json:"soldQuantity,omitempty"`
}

// Price is the effective storefront price: the sale price when set,
// the original price otherwise.
func (p *Product) Price() float64 {
	if p.DiscountPrice > 0 {
		return p.DiscountPrice
	}
	if p.ActualPrice > 0 {
		return p.ActualPrice
	}
	return 0
}

// OnSale reports whether the product has a strict markdown.
func (p *Product) OnSale() bool {
	return p.DiscountPrice < p.ActualPrice
}

// CategoryName resolves the category label, preferring the embedded
// reference over the flat string.
func (p *Product) CategoryName() string {
	return refName(p.CategoryID, p.Category)
}

func (p *Product) BrandName() string {
	return refName(p.BrandID, p.Brand)
}

func (p *Product) TypeName() string {
	return refName(p.TypeID, p.Type)
}

func (p *Product) MaterialName() string {
	return refName(p.MaterialID, p.Material)
}

func refName(ref *NameRef, flat string) string {
	if ref != nil && strings.TrimSpace(ref.Name) != "" {
		return strings.TrimSpace(ref.Name)
	}
	return strings.TrimSpace(flat)
}

// ═══════════════════════════════════════════════════════════
// JSONB list types (seeder / GORM raw scans)
// ═══════════════════════════════════════════════════════════

type (
	StringList        []string
	SpecificationList []SpecificationGroup
)

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = make(StringList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan StringList")
	}
	return json.Unmarshal(bytes, l)
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

func (l *SpecificationList) Scan(value interface{}) error {
	if value == nil {
		*l = make(SpecificationList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan SpecificationList")
	}
	return json.Unmarshal(bytes, l)
}

func (l SpecificationList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]SpecificationGroup{})
	}
	return json.Marshal(l)
}
