package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shahhub/resumehub/internal/access"
	"github.com/shahhub/resumehub/internal/utils"
)

// TierFrom reads the tier derived by JWTAuth; defaults to guest when the
// route runs without the auth middleware.
func TierFrom(c *gin.Context) access.Tier {
	v, ok := c.Get("tier")
	if !ok {
		return access.TierGuest
	}
	t, ok := v.(access.Tier)
	if !ok {
		return access.TierGuest
	}
	return t
}

// RequireTier gates a route group on a minimum tier. Below-Free callers get
// a sign-in wall, below-Pro callers get the upgrade prompt.
func RequireTier(min access.Tier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tier := TierFrom(c)
		if tier >= min {
			c.Next()
			return
		}

		if min == access.TierFree {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiError{
				Code:    utils.CodeUnauthorized,
				Message: "sign in required",
			})
			return
		}
		c.AbortWithStatusJSON(http.StatusPaymentRequired, apiError{
			Code:    utils.CodeUpgradeRequired,
			Message: "this feature requires the Pro plan",
		})
	}
}

func RequirePro() gin.HandlerFunc { return RequireTier(access.TierPro) }
