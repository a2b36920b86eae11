package middleware

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/Memoyu/Mbill/internal/errors"
	"github.com/Memoyu/Mbill/internal/pkg"
)

// RequireOwner reads the X-Owner-Id header, validates it as a ULID and
// places it in the request context. Every bill and statistics route
// runs behind it.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-Owner-Id")
		if raw == "" {
			respondMiddlewareError(c, appErrors.ErrUnauthorized.WithDetails(map[string]interface{}{
				"header": "X-Owner-Id",
			}))
			return
		}

		ownerID, err := pkg.ParseULID(raw)
		if err != nil {
			respondMiddlewareError(c, appErrors.ErrUnauthorized.WithError(err))
			return
		}

		c.Set("owner_id", ownerID.String())
		c.Next()
	}
}

func respondMiddlewareError(c *gin.Context, err *appErrors.AppError) {
	payload := gin.H{
		"error":   err.Code,
		"message": err.Message,
	}
	if len(err.Details) > 0 {
		payload["details"] = err.Details
	}
	c.JSON(err.StatusCode, payload)
	c.Abort()
}
