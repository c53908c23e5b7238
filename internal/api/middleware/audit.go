package middleware

import (
	log "log/slog"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
)

// AuditMiddleware 结构化记录请求与响应元数据。
// 请求体可能携带 base64 图片，不记录内容本身。
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		rawQuery := c.Request.URL.RawQuery
		decodedQuery, err := url.QueryUnescape(rawQuery)
		if err != nil {
			decodedQuery = rawQuery
		}

		log.InfoContext(ctx, "Recv Request",
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.String("query", decodedQuery),
			log.Int64("req_size", c.Request.ContentLength),
		)

		startTime := time.Now()

		c.Next()

		log.InfoContext(ctx, "Send Response",
			log.Int("status", c.Writer.Status()),
			log.Duration("latency", time.Since(startTime)),
			log.Int("res_size", c.Writer.Size()),
		)
	}
}
