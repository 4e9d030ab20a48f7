package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name        string          `json:"name"        validate:"required,min=2,max=100"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"       validate:"required"`
	ImageURL    string          `json:"image_url"`
	Stock       int             `json:"stock"       validate:"min=0"`
	// Category is referenced by slug, the stable external identifier.
	CategorySlug string `json:"category" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Stock       int             `json:"stock"`
	Rating      float64         `json:"rating"`
	CategoryID  uint            `json:"category_id"`
	SupplierID  *uint           `json:"supplier_id"`
	IsActive    bool            `json:"is_active"`
}
