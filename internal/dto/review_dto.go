package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateReviewRequest struct {
	Grade   float64 `json:"grade"   validate:"min=0,max=10"`
	Comment *string `json:"comment"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ReviewResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	ProductID   uint      `json:"product_id"`
	Comment     *string   `json:"comment"`
	CommentDate time.Time `json:"comment_date"`
	Grade       float64   `json:"grade"`
	IsActive    bool      `json:"is_active"`
}
