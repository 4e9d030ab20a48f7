package auth

import (
	"ecomarket/internal/apierror"
	"ecomarket/internal/model"
)

// Permission guards. Each is a stateless predicate over decoded Claims and,
// where relevant, a loaded resource. Handlers call them explicitly at the top
// of each mutating operation and translate the returned typed error into the
// response; denial is always Forbidden (403), distinct from NotFound (404).

// RequireAdmin allows only accounts with the admin flag.
func RequireAdmin(claims *Claims) error {
	if claims == nil {
		return apierror.Forbidden("Authentication required")
	}
	if !claims.IsAdmin {
		return apierror.Forbidden("You don't have admin permission")
	}
	return nil
}

// RequireSupplier allows suppliers and admins.
func RequireSupplier(claims *Claims) error {
	if claims == nil {
		return apierror.Forbidden("Authentication required")
	}
	if !claims.IsAdmin && !claims.IsSupplier {
		return apierror.Forbidden("You don't have supplier permission")
	}
	return nil
}

// RequireCustomer allows customers and admins.
func RequireCustomer(claims *Claims) error {
	if claims == nil {
		return apierror.Forbidden("Authentication required")
	}
	if !claims.IsAdmin && !claims.IsCustomer {
		return apierror.Forbidden("You don't have customer permission")
	}
	return nil
}

// RequireProductOwnership enforces the supplier-owns-resource rule: the
// caller must hold the supplier (or admin) flag AND be the product's owner.
// Ownership is checked for admins too — an admin editing someone else's
// product is still denied, matching the catalog's contract.
func RequireProductOwnership(claims *Claims, product *model.Product) error {
	if err := RequireSupplier(claims); err != nil {
		return err
	}
	if product.SupplierID == nil || *product.SupplierID != claims.UserID {
		return apierror.Forbidden("You are not authorized to use this method")
	}
	return nil
}

// RequireActiveUser maps a missing or soft-deleted target account to
// NotFound, never Forbidden: callers must not learn whether the row exists.
func RequireActiveUser(user *model.User) error {
	if user == nil || !user.IsActive {
		return apierror.NotFound("User not found")
	}
	return nil
}
