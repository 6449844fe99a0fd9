package middleware

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yatube-dev/yatube/internal/cache"
)

type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// PageCache serves GET responses from the page cache keyed by request URI.
// A hit replays the stored bytes verbatim; a successful miss stores the
// rendered page until the TTL runs out or the cache is cleared.
func PageCache(pc *cache.PageCache, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		key := c.Request.URL.RequestURI()
		if body, ok := pc.Get(c.Request.Context(), key); ok {
			c.Data(http.StatusOK, "text/html; charset=utf-8", body)
			c.Abort()
			return
		}

		w := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		if w.Status() == http.StatusOK {
			if err := pc.Set(c.Request.Context(), key, w.body.Bytes()); err != nil {
				logger.Warn("page cache set failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
}
