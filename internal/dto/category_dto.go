package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	Name     string `json:"name"      validate:"required,min=2,max=100"`
	ParentID *uint  `json:"parent_id"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CategoryResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ParentID *uint  `json:"parent_id"`
	IsActive bool   `json:"is_active"`
}
