package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ecomarket/internal/apierror"
	"ecomarket/internal/auth"
	"ecomarket/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProductService serves a single known product.
type stubProductService struct {
	created []dto.CreateProductRequest
}

func (s *stubProductService) sample() dto.ProductResponse {
	return dto.ProductResponse{
		ID:     1,
		Name:   "Phone",
		Slug:   "phone",
		Price:  decimal.RequireFromString("499.99"),
		Stock:  5,
		Rating: 7.5,
	}
}

func (s *stubProductService) ListAvailable(_ context.Context) ([]dto.ProductResponse, error) {
	return []dto.ProductResponse{s.sample()}, nil
}

func (s *stubProductService) ListByCategory(_ context.Context, categorySlug string) ([]dto.ProductResponse, error) {
	if categorySlug != "electronics" {
		return nil, apierror.NotFound("There is no such category")
	}
	return []dto.ProductResponse{s.sample()}, nil
}

func (s *stubProductService) Detail(_ context.Context, productSlug string) (*dto.ProductResponse, error) {
	if productSlug != "phone" {
		return nil, apierror.NotFound("There is no product found")
	}
	p := s.sample()
	return &p, nil
}

func (s *stubProductService) Create(_ context.Context, _ *auth.Claims, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	s.created = append(s.created, req)
	p := s.sample()
	return &p, nil
}

func (s *stubProductService) Update(_ context.Context, claims *auth.Claims, productSlug string, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if claims.UserID != 7 {
		return nil, apierror.Forbidden("You are not authorized to use this method")
	}
	p := s.sample()
	return &p, nil
}

func (s *stubProductService) Delete(_ context.Context, claims *auth.Claims, productSlug string) error {
	if claims.UserID != 7 {
		return apierror.Forbidden("You are not authorized to use this method")
	}
	return nil
}

func newProductRouter(claims *auth.Claims) (*gin.Engine, *stubProductService) {
	svc := &stubProductService{}
	h := NewProductsHandler(svc)

	r := gin.New()
	grp := r.Group("/products", withClaims(claims))
	grp.GET("/", h.List)
	grp.GET("/detail/:slug", h.Detail)
	grp.GET("/:category_slug", h.ByCategory)
	grp.POST("/", h.Create)
	grp.PUT("/:slug", h.Update)
	grp.DELETE("/:slug", h.Delete)
	return r, svc
}

func jsonBody(s string) io.Reader { return strings.NewReader(s) }

const validProductJSON = `{
	"name": "Smart Watch X2",
	"description": "A watch",
	"price": "199.90",
	"image_url": "https://img.example/watch.png",
	"stock": 10,
	"category": "electronics"
}`

func TestProductsHandler_PublicReads(t *testing.T) {
	r, _ := newProductRouter(nil)

	t.Run("list", func(t *testing.T) {
		w := do(r, http.MethodGet, "/products/")
		require.Equal(t, http.StatusOK, w.Code)

		var resp []dto.ProductResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "phone", resp[0].Slug)
	})

	t.Run("detail", func(t *testing.T) {
		w := do(r, http.MethodGet, "/products/detail/phone")
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.ProductResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Phone", resp.Name)
		assert.Equal(t, 7.5, resp.Rating)
	})

	t.Run("detail of unknown product", func(t *testing.T) {
		w := do(r, http.MethodGet, "/products/detail/no-such")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "There is no product found", detailOf(t, w))
	})

	t.Run("by category", func(t *testing.T) {
		w := do(r, http.MethodGet, "/products/electronics")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("by unknown category", func(t *testing.T) {
		w := do(r, http.MethodGet, "/products/no-such")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "There is no such category", detailOf(t, w))
	})
}

func TestProductsHandler_Create(t *testing.T) {
	t.Run("supplier creates a product", func(t *testing.T) {
		r, svc := newProductRouter(&auth.Claims{UserID: 7, IsSupplier: true})
		w := postJSON(r, "/products/", validProductJSON)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp dto.StatusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Product successfully created", resp.Transaction)
		require.Len(t, svc.created, 1)
		assert.Equal(t, "electronics", svc.created[0].CategorySlug)
	})

	t.Run("customer is rejected", func(t *testing.T) {
		r, svc := newProductRouter(&auth.Claims{UserID: 3, IsCustomer: true})
		w := postJSON(r, "/products/", validProductJSON)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "You don't have supplier permission", detailOf(t, w))
		assert.Empty(t, svc.created)
	})

	t.Run("admin passes the supplier guard", func(t *testing.T) {
		r, _ := newProductRouter(&auth.Claims{UserID: 1, IsAdmin: true})
		w := postJSON(r, "/products/", validProductJSON)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing category fails validation", func(t *testing.T) {
		r, _ := newProductRouter(&auth.Claims{UserID: 7, IsSupplier: true})
		w := postJSON(r, "/products/", `{"name": "Watch", "price": "199.90", "stock": 10}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("negative stock fails validation", func(t *testing.T) {
		r, _ := newProductRouter(&auth.Claims{UserID: 7, IsSupplier: true})
		w := postJSON(r, "/products/", `{
			"name": "Watch", "price": "199.90", "stock": -1, "category": "electronics"
		}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestProductsHandler_UpdateDelete(t *testing.T) {
	t.Run("owner updates", func(t *testing.T) {
		r, _ := newProductRouter(&auth.Claims{UserID: 7, IsSupplier: true})
		req := httptest.NewRequest(http.MethodPut, "/products/phone", jsonBody(validProductJSON))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.StatusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Product update is successful", resp.Transaction)
	})

	t.Run("non-owner update is rejected", func(t *testing.T) {
		r, _ := newProductRouter(&auth.Claims{UserID: 8, IsSupplier: true})
		req := httptest.NewRequest(http.MethodPut, "/products/phone", jsonBody(validProductJSON))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "You are not authorized to use this method", detailOf(t, w))
	})

	t.Run("owner deletes", func(t *testing.T) {
		r, _ := newProductRouter(&auth.Claims{UserID: 7, IsSupplier: true})
		w := do(r, http.MethodDelete, "/products/phone")
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.StatusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Product delete is successful", resp.Transaction)
	})

	t.Run("customer delete is rejected at the guard", func(t *testing.T) {
		r, _ := newProductRouter(&auth.Claims{UserID: 3, IsCustomer: true})
		w := do(r, http.MethodDelete, "/products/phone")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
