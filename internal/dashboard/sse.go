package dashboard

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skathpalia/urms/internal/depot"
	"github.com/skathpalia/urms/internal/models"
)

// activityEvent holds data for an activity SSE event.
type activityEvent struct {
	ID        uint   `json:"id"`
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Source    string `json:"source"`
	Message   string `json:"message"`
}

// handleSSE streams new activity-log entries to the client, polling the
// store every few seconds.
func handleSSE(store *depot.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Header("X-Accel-Buffering", "no")

		writeSSE(c.Writer, "connected", map[string]string{"type": "connected"})
		c.Writer.Flush()

		// Only alert on entries newer than the connection.
		var lastSeenID uint
		var latest models.ActivityLogEntry
		if err := store.DB().Order("id DESC").Limit(1).First(&latest).Error; err == nil {
			lastSeenID = latest.ID
		}

		ctx := c.Request.Context()
		ticker := time.NewTicker(3 * time.Second)
		heartbeat := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		defer heartbeat.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-heartbeat.C:
				writeSSE(c.Writer, "heartbeat", map[string]string{
					"timestamp": time.Now().UTC().Format(time.RFC3339),
				})
				c.Writer.Flush()
			case <-ticker.C:
				var entries []models.ActivityLogEntry
				store.DB().Where("id > ?", lastSeenID).Order("id ASC").Find(&entries)
				if len(entries) == 0 {
					continue
				}
				lastSeenID = entries[len(entries)-1].ID

				for _, e := range entries {
					writeSSE(c.Writer, "activity", activityEvent{
						ID:        e.ID,
						Timestamp: e.Timestamp.UTC().Format(time.RFC3339),
						Level:     string(e.Level),
						Source:    e.Source,
						Message:   e.Message,
					})
				}
				c.Writer.Flush()
			}
		}
	}
}

// writeSSE writes a single SSE event to the writer.
func writeSSE(w io.Writer, event string, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, string(jsonData))
}
