package diagnostics

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/backend/config"
	"github.com/devfolio/backend/pkg/database"
)

const maxCollections = 10

// Handler handles the root and diagnostics endpoints.
type Handler struct {
	store database.Store
	dbCfg config.DatabaseConfig
}

// NewHandler creates a diagnostics handler. store may be nil when the
// document store is not configured or was unreachable at startup.
func NewHandler(store database.Store, dbCfg config.DatabaseConfig) *Handler {
	return &Handler{store: store, dbCfg: dbCfg}
}

// Root handles GET /.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Portfolio API running"})
}

// Test handles GET /test. Reports process liveness, store reachability and
// configuration presence. Never fails: store errors degrade the database
// field to an error string.
func (h *Handler) Test(c *gin.Context) {
	resp := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      presence(h.dbCfg.URL != ""),
		"database_name":     presence(h.dbCfg.Name != ""),
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if h.store != nil {
		resp["database"] = "available"
		names, err := h.store.ListCollectionNames(c.Request.Context())
		if err != nil {
			resp["database"] = "connected but error: " + truncate(err.Error(), 50)
		} else {
			if len(names) > maxCollections {
				names = names[:maxCollections]
			}
			if names == nil {
				names = []string{}
			}
			resp["collections"] = names
			resp["database"] = "connected"
			resp["connection_status"] = "connected"
		}
	}

	c.JSON(http.StatusOK, resp)
}

func presence(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
