// Package httpapi is the small HTTP surface next to the gRPC API: a health
// check and stable public links to stored objects.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophdocs/internal/common"
	"github.com/dmitrijs2005/gophdocs/internal/logging"
	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// ObjectLinker hands out short-lived download URLs.
type ObjectLinker interface {
	DownloadURL(ctx context.Context, path string) (string, error)
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// NewRouter constructs the gin engine with middleware and routes registered.
func NewRouter(l logging.Logger, db Pinger, objects ObjectLinker) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(requestID(), accessLog(l), recovery(l))

	r.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			l.Warn(ctx, "health check failed", "error", err.Error())
			abortError(c, http.StatusServiceUnavailable, "unavailable", "database unreachable")
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	r.GET("/public/*path", func(c *gin.Context) {
		path := strings.TrimPrefix(c.Param("path"), "/")
		u, err := objects.DownloadURL(c.Request.Context(), path)
		if err != nil {
			if errors.Is(err, common.ErrorValidation) {
				abortError(c, http.StatusBadRequest, "invalid_path", "invalid object path")
				return
			}
			l.Error(c.Request.Context(), "presign failed", "path", path, "error", err.Error())
			abortError(c, http.StatusInternalServerError, "internal", "unexpected server error")
			return
		}
		c.Redirect(http.StatusFound, u)
	})

	return r
}

func abortError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}
