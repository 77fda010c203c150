package middleware

import (
	"bytes"
	"log/slog"
	"sync"

	"github.com/duosplit/duo_expense_app/internal/cache"
	"github.com/gin-gonic/gin"
)

// IdempotencyKeyHeader carries the client-chosen key for safe retries of
// mutating requests.
const IdempotencyKeyHeader = "Idempotency-Key"

// CachedResponse is the recorded outcome of a completed mutating request.
type CachedResponse struct {
	Status      int
	ContentType string
	Body        []byte
}

// Idempotency replays the recorded response for a repeated Idempotency-Key.
// The check-then-insert pair is serialized around handler execution with one
// mutex so two concurrent identical requests cannot both post, and so a
// net-due read inside a posting handler cannot interleave with another
// posting. Requests without the header pass through untouched.
func Idempotency(store *cache.LRUCache[CachedResponse]) gin.HandlerFunc {
	var mu sync.Mutex

	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		mu.Lock()
		defer mu.Unlock()

		if cached, ok := store.Get(key); ok {
			GetLoggerFromCtx(c.Request.Context()).Info("Replaying idempotent response", slog.String("idempotency_key", key))
			c.Data(cached.Status, cached.ContentType, cached.Body)
			c.Abort()
			return
		}

		writer := &bodyCaptureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		// 5xx outcomes are not recorded: the client should be able to retry
		// a server failure with the same key.
		if writer.Status() < 500 {
			store.Set(key, CachedResponse{
				Status:      writer.Status(),
				ContentType: writer.Header().Get("Content-Type"),
				Body:        writer.body.Bytes(),
			})
		}
	}
}

// bodyCaptureWriter tees the response body so it can be replayed later.
type bodyCaptureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
