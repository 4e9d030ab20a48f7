package handler

import (
	"net/http"

	"ecomarket/internal/auth"
	"ecomarket/internal/dto"
	"ecomarket/internal/middleware"
	"ecomarket/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// List GET /products/ — public; active, in-stock products in active
// categories. An empty catalog is a 404, not an empty list.
func (h *ProductsHandler) List(c *gin.Context) {
	resp, err := h.svc.ListAvailable(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ByCategory GET /products/:category_slug — public; includes direct
// subcategories.
func (h *ProductsHandler) ByCategory(c *gin.Context) {
	resp, err := h.svc.ListByCategory(c.Request.Context(), c.Param("category_slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Detail GET /products/detail/:slug — public, Redis-cached.
func (h *ProductsHandler) Detail(c *gin.Context) {
	resp, err := h.svc.Detail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create POST /products/ — supplier or admin; the caller becomes the owner.
func (h *ProductsHandler) Create(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if err := auth.RequireSupplier(claims); err != nil {
		respondError(c, err)
		return
	}

	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if _, err := h.svc.Create(c.Request.Context(), claims, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.StatusResponse{
		StatusCode:  http.StatusCreated,
		Transaction: "Product successfully created",
	})
}

// Update PUT /products/:slug — supplier-owns-resource rule, enforced in the
// service once the product row is loaded.
func (h *ProductsHandler) Update(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if err := auth.RequireSupplier(claims); err != nil {
		respondError(c, err)
		return
	}

	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if _, err := h.svc.Update(c.Request.Context(), claims, c.Param("slug"), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{
		StatusCode:  http.StatusOK,
		Transaction: "Product update is successful",
	})
}

// Delete DELETE /products/:slug — supplier-owns-resource rule, soft delete.
func (h *ProductsHandler) Delete(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if err := auth.RequireSupplier(claims); err != nil {
		respondError(c, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), claims, c.Param("slug")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{
		StatusCode:  http.StatusOK,
		Transaction: "Product delete is successful",
	})
}
