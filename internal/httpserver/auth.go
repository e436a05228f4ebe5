package httpserver

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Teodagher/jove-jewelry-sub004/internal/service/auth"
)

const adminIDKey = "adminID"

func loginHandler(logger *log.Logger, svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
			return
		}
		token, err := svc.Login(c.Request.Context(), in.Email, in.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
				return
			}
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"accessToken": token,
			"tokenType":   "Bearer",
			"expiresIn":   svc.TokenTTLSeconds(),
		})
	}
}

// adminAuthMiddleware guards the admin group with a bearer token check.
func adminAuthMiddleware(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		adminID, err := svc.Verify(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(adminIDKey, adminID)
		c.Next()
	}
}
