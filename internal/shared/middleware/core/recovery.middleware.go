package core

import (
	"log/slog"
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
)

// RecoveryHandler type spécifique pour Fx
type RecoveryHandler gin.HandlerFunc

// RecoveryMiddleware capture les panics des handlers et répond 500
// sans faire tomber le serveur
func RecoveryMiddleware() RecoveryHandler {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				stack := make([]byte, 4096)
				n := runtime.Stack(stack, false)

				slog.Error("panic recovered",
					"error", err,
					"stack", string(stack[:n]),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"client_ip", c.ClientIP(),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Une erreur interne est survenue.",
				})
			}
		}()
		c.Next()
	}
}
