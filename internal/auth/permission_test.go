package auth

import (
	"net/http"
	"testing"

	"ecomarket/internal/apierror"
	"ecomarket/internal/model"

	"github.com/stretchr/testify/assert"
)

func uintPtr(v uint) *uint { return &v }

func TestRoleGuards(t *testing.T) {
	admin := &Claims{UserID: 1, IsAdmin: true}
	supplier := &Claims{UserID: 2, IsSupplier: true}
	customer := &Claims{UserID: 3, IsCustomer: true}

	tests := []struct {
		name    string
		guard   func(*Claims) error
		claims  *Claims
		allowed bool
	}{
		{"admin passes admin guard", RequireAdmin, admin, true},
		{"supplier fails admin guard", RequireAdmin, supplier, false},
		{"nil claims fail admin guard", RequireAdmin, nil, false},
		{"admin passes supplier guard", RequireSupplier, admin, true},
		{"supplier passes supplier guard", RequireSupplier, supplier, true},
		{"customer fails supplier guard", RequireSupplier, customer, false},
		{"admin passes customer guard", RequireCustomer, admin, true},
		{"customer passes customer guard", RequireCustomer, customer, true},
		{"supplier fails customer guard", RequireCustomer, supplier, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.guard(tt.claims)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, http.StatusForbidden, apierror.StatusOf(err))
			}
		})
	}
}

func TestRequireProductOwnership(t *testing.T) {
	owned := &model.Product{ID: 10, SupplierID: uintPtr(2)}
	orphan := &model.Product{ID: 11, SupplierID: nil}

	t.Run("owner may act on own product", func(t *testing.T) {
		err := RequireProductOwnership(&Claims{UserID: 2, IsSupplier: true}, owned)
		assert.NoError(t, err)
	})

	t.Run("other supplier is denied", func(t *testing.T) {
		err := RequireProductOwnership(&Claims{UserID: 7, IsSupplier: true}, owned)
		assert.Equal(t, http.StatusForbidden, apierror.StatusOf(err))
	})

	t.Run("admin without ownership is denied", func(t *testing.T) {
		err := RequireProductOwnership(&Claims{UserID: 7, IsAdmin: true}, owned)
		assert.Equal(t, http.StatusForbidden, apierror.StatusOf(err))
	})

	t.Run("customer is denied before ownership is consulted", func(t *testing.T) {
		err := RequireProductOwnership(&Claims{UserID: 2, IsCustomer: true}, owned)
		assert.Equal(t, http.StatusForbidden, apierror.StatusOf(err))
	})

	t.Run("product without supplier has no owner", func(t *testing.T) {
		err := RequireProductOwnership(&Claims{UserID: 2, IsSupplier: true}, orphan)
		assert.Equal(t, http.StatusForbidden, apierror.StatusOf(err))
	})
}

func TestRequireActiveUser(t *testing.T) {
	assert.NoError(t, RequireActiveUser(&model.User{ID: 1, IsActive: true}))

	err := RequireActiveUser(&model.User{ID: 1, IsActive: false})
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))

	err = RequireActiveUser(nil)
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))
}
