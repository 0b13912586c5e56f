package dashboard

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skathpalia/urms/internal/depot"
)

// registerRoutes sets up all dashboard routes on the Gin router.
func registerRoutes(router *gin.Engine, store *depot.Store) {
	// Embedded static assets (served from assets/ subdir of the embed.FS).
	staticFS, _ := fs.Sub(assetsFS, "assets")
	router.StaticFS("/static", http.FS(staticFS))

	// Pages.
	router.GET("/", handleIndex(store))
	router.GET("/rakes/:id", handleRakeDetail(store))
	router.GET("/assignments", handleAssignments(store))
	router.GET("/cases", handleCases(store))
	router.GET("/activity", handleActivity(store))

	// SSE stream of new activity entries.
	router.GET("/api/events", handleSSE(store))
}

func handleIndex(store *depot.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		kpi, rows, err := Overview(store)
		if err != nil {
			c.String(http.StatusInternalServerError, "overview: %v", err)
			return
		}
		c.HTML(http.StatusOK, "index.html", gin.H{
			"KPI":   kpi,
			"Rakes": rows,
		})
	}
}

func handleRakeDetail(store *depot.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sum, actions, err := RakeDetail(store, c.Param("id"))
		if err != nil {
			c.String(http.StatusInternalServerError, "rake detail: %v", err)
			return
		}
		if sum == nil {
			c.HTML(http.StatusNotFound, "notfound.html", gin.H{
				"RakeID": c.Param("id"),
			})
			return
		}
		percent := 0
		if total := len(sum.Wagons); total > 0 {
			percent = sum.Unloaded * 100 / total
		}
		c.HTML(http.StatusOK, "rake.html", gin.H{
			"Summary": sum,
			"Actions": actions,
			"Percent": percent,
		})
	}
}

func handleAssignments(store *depot.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		assignments, err := store.ListAssignments(0)
		if err != nil {
			c.String(http.StatusInternalServerError, "assignments: %v", err)
			return
		}
		type row struct {
			ID, RakeID, LaneFrom, Reason string
			Trucks                       []string
			CreatedAt                    string
		}
		rows := make([]row, len(assignments))
		for i, a := range assignments {
			rows[i] = row{
				ID:        a.ID,
				RakeID:    a.RakeID,
				LaneFrom:  a.LaneFrom,
				Reason:    a.Reason,
				Trucks:    depot.SplitTrucks(a.TruckIDs),
				CreatedAt: a.CreatedAt.Format("2006-01-02 15:04"),
			}
		}
		c.HTML(http.StatusOK, "assignments.html", gin.H{"Assignments": rows})
	}
}

func handleCases(store *depot.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cases, err := store.ListCases(0)
		if err != nil {
			c.String(http.StatusInternalServerError, "cases: %v", err)
			return
		}
		c.HTML(http.StatusOK, "cases.html", gin.H{"Cases": cases})
	}
}

func handleActivity(store *depot.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := store.RecentActivity(0)
		if err != nil {
			c.String(http.StatusInternalServerError, "activity: %v", err)
			return
		}
		c.HTML(http.StatusOK, "activity.html", gin.H{"Entries": entries})
	}
}
