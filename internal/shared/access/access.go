// Package access enforces console role capabilities on HTTP routes.
package access

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	apierrors "github.com/menulink/restaurant-api-server/internal/shared/errors"
)

// RoleHeader carries the caller's console role on each request.
const RoleHeader = "X-Restaurant-Role"

// Role identifies which console a request originates from.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleManager  Role = "manager"
)

// ParseRole normalizes a header value into a known role.
func ParseRole(raw string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleCustomer:
		return RoleCustomer, true
	case RoleStaff:
		return RoleStaff, true
	case RoleManager:
		return RoleManager, true
	}
	return "", false
}

const contextKey = "restaurant.role"

// FromContext returns the role resolved by the Require middleware.
func FromContext(c *gin.Context) (Role, bool) {
	value, ok := c.Get(contextKey)
	if !ok {
		return "", false
	}
	role, ok := value.(Role)
	return role, ok
}

// Require returns gin middleware that admits only the listed roles.
// Requests without a role header are rejected as unauthorized; requests
// with a recognized role outside the allow list are forbidden.
func Require(roles ...Role) gin.HandlerFunc {
	allowed := make(map[Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(c *gin.Context) {
		raw := c.GetHeader(RoleHeader)
		if raw == "" {
			apierrors.Respond(c, apierrors.ErrUnauthorized.WithDetail(fmt.Sprintf("missing %s header", RoleHeader)))
			c.Abort()
			return
		}
		role, ok := ParseRole(raw)
		if !ok {
			apierrors.Respond(c, apierrors.ErrUnauthorized.WithDetail(fmt.Sprintf("unknown role %q", raw)))
			c.Abort()
			return
		}
		if _, ok := allowed[role]; !ok {
			apierrors.Respond(c, apierrors.ErrForbidden.WithDetail(fmt.Sprintf("role %q may not perform this operation", role)))
			c.Abort()
			return
		}
		c.Set(contextKey, role)
		c.Next()
	}
}
