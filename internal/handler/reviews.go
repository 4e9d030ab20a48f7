package handler

import (
	"net/http"
	"strconv"

	"ecomarket/internal/apierror"
	"ecomarket/internal/auth"
	"ecomarket/internal/dto"
	"ecomarket/internal/middleware"
	"ecomarket/internal/service"

	"github.com/gin-gonic/gin"
)

type ReviewsHandler struct{ svc service.ReviewService }

func NewReviewsHandler(svc service.ReviewService) *ReviewsHandler {
	return &ReviewsHandler{svc: svc}
}

// List GET /reviews/ — public; active reviews of active products by active
// users; 404 when none exist.
func (h *ReviewsHandler) List(c *gin.Context) {
	resp, err := h.svc.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ByProduct GET /reviews/:product_slug — public.
func (h *ReviewsHandler) ByProduct(c *gin.Context) {
	resp, err := h.svc.ListByProduct(c.Request.Context(), c.Param("product_slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create POST /reviews/:product_slug — customer or admin. The product rating
// is recomputed in the same transaction before the handler responds.
func (h *ReviewsHandler) Create(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if err := auth.RequireCustomer(claims); err != nil {
		respondError(c, err)
		return
	}

	var req dto.CreateReviewRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Create(c.Request.Context(), claims, c.Param("product_slug"), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.StatusResponse{
		StatusCode:  http.StatusCreated,
		Transaction: "Review successfully created",
	})
}

// Delete DELETE /reviews/?review_id= — admin only, soft delete + recompute.
func (h *ReviewsHandler) Delete(c *gin.Context) {
	if err := auth.RequireAdmin(middleware.GetClaims(c)); err != nil {
		respondError(c, err)
		return
	}

	reviewID, err := strconv.ParseUint(c.Query("review_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid review_id"))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), uint(reviewID)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{
		StatusCode:  http.StatusOK,
		Transaction: "Review successfully deleted",
	})
}
