package handler

import (
	"net/http"

	"ecomarket/internal/auth"
	"ecomarket/internal/dto"
	"ecomarket/internal/middleware"
	"ecomarket/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoriesHandler struct{ svc service.CategoryService }

func NewCategoriesHandler(svc service.CategoryService) *CategoriesHandler {
	return &CategoriesHandler{svc: svc}
}

// List GET /categories/ — public, active categories only.
func (h *CategoriesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create POST /categories/ — admin only.
func (h *CategoriesHandler) Create(c *gin.Context) {
	if err := auth.RequireAdmin(middleware.GetClaims(c)); err != nil {
		respondError(c, err)
		return
	}

	var req dto.CreateCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if _, err := h.svc.Create(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.StatusResponse{
		StatusCode:  http.StatusCreated,
		Transaction: "Successful",
	})
}

// Update PUT /categories/:slug — admin only.
func (h *CategoriesHandler) Update(c *gin.Context) {
	if err := auth.RequireAdmin(middleware.GetClaims(c)); err != nil {
		respondError(c, err)
		return
	}

	var req dto.CreateCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if _, err := h.svc.Update(c.Request.Context(), c.Param("slug"), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{
		StatusCode:  http.StatusOK,
		Transaction: "Category update is successful",
	})
}

// Delete DELETE /categories/:slug — admin only, soft delete.
func (h *CategoriesHandler) Delete(c *gin.Context) {
	if err := auth.RequireAdmin(middleware.GetClaims(c)); err != nil {
		respondError(c, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{
		StatusCode:  http.StatusOK,
		Transaction: "Category delete is successful",
	})
}
