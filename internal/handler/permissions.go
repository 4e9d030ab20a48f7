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

type PermissionsHandler struct{ svc service.PermissionService }

func NewPermissionsHandler(svc service.PermissionService) *PermissionsHandler {
	return &PermissionsHandler{svc: svc}
}

func targetUserID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Query("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid user_id"))
		return 0, false
	}
	return uint(id), true
}

// ToggleSupplier PATCH /permission/supplier?user_id= — admin only.
func (h *PermissionsHandler) ToggleSupplier(c *gin.Context) {
	if err := auth.RequireAdmin(middleware.GetClaims(c)); err != nil {
		respondError(c, err)
		return
	}

	userID, ok := targetUserID(c)
	if !ok {
		return
	}
	detail, err := h.svc.ToggleSupplier(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DetailResponse{StatusCode: http.StatusOK, Detail: detail})
}

// ToggleCustomer PATCH /permission/customer?user_id= — admin only.
func (h *PermissionsHandler) ToggleCustomer(c *gin.Context) {
	if err := auth.RequireAdmin(middleware.GetClaims(c)); err != nil {
		respondError(c, err)
		return
	}

	userID, ok := targetUserID(c)
	if !ok {
		return
	}
	detail, err := h.svc.ToggleCustomer(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DetailResponse{StatusCode: http.StatusOK, Detail: detail})
}

// DeleteUser DELETE /permission/delete?user_id= — admin only; admin accounts
// can never be soft-deleted.
func (h *PermissionsHandler) DeleteUser(c *gin.Context) {
	if err := auth.RequireAdmin(middleware.GetClaims(c)); err != nil {
		respondError(c, err)
		return
	}

	userID, ok := targetUserID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteUser(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DetailResponse{StatusCode: http.StatusOK, Detail: "User is deleted"})
}
