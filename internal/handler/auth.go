package handler

import (
	"net/http"

	"ecomarket/internal/dto"
	"ecomarket/internal/middleware"
	"ecomarket/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Token godoc
// @Summary Issue an access token for a username/password pair
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} apierror.APIError
// @Router /auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req dto.TokenRequest
	if !bindFormAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Register godoc
// @Summary Create a new customer account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.CreateUserRequest true "New user"
// @Success 201 {object} dto.StatusResponse
// @Router /auth/ [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.svc.Register(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.StatusResponse{
		StatusCode:  http.StatusCreated,
		Transaction: "Successful",
	})
}

// CurrentUser echoes the decoded claims of the caller's token.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	claims := middleware.GetClaims(c)
	c.JSON(http.StatusOK, gin.H{"User": dto.CurrentUserResponse{
		Username:   claims.Username,
		UserID:     claims.UserID,
		IsAdmin:    claims.IsAdmin,
		IsSupplier: claims.IsSupplier,
		IsCustomer: claims.IsCustomer,
	}})
}
