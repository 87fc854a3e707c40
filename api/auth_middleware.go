package api

import (
	"net/http"
	"slices"

	bk "github.com/courtside/facility-booking-backend/booking"
	"github.com/courtside/facility-booking-backend/identity"
	"github.com/gin-gonic/gin"
)

// Auth resolves the access token to a Caller through the identity
// provider. Anyone carrying the admin role becomes an administrator.
func Auth(identityClient identity.IdentityClient, adminRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken := c.GetHeader("accesstoken")

		if len(accessToken) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		profile, err := identityClient.GetProfile(c.Request.Context(), accessToken)

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			c.Abort()
			return
		}

		c.Set("user", bk.Caller{
			ID:    profile.ID,
			Admin: slices.Contains(profile.Roles, adminRole),
		})
	}
}
