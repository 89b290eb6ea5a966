// ════════════════════════════════════════════════════════════
// Path: controllers/entity_controller/controller.go
// Data-driven delete endpoints over the dependency graph
// ════════════════════════════════════════════════════════════

package entity_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	entity_cache "github.com/kartify-commerce/kartify-backend/cache"
	"github.com/kartify-commerce/kartify-backend/cascade"
	"github.com/kartify-commerce/kartify-backend/models"
	"github.com/kartify-commerce/kartify-backend/store"
)

// EntityController serves the cascading delete, soft-delete and count
// endpoints for every entity in the dependency graph. One controller
// covers all entities; the graph decides what a delete touches.
type EntityController struct {
	Resolver *cascade.Resolver
}

// NewEntityController builds the controller over a resolver.
func NewEntityController(resolver *cascade.Resolver) *EntityController {
	return &EntityController{Resolver: resolver}
}

type deleteOptions struct {
	IsWarning bool `json:"isWarning"`
}

type idsRequest struct {
	IDs       []int `json:"ids" binding:"required"`
	IsWarning bool  `json:"isWarning"`
}

// kindParam resolves the :entity path segment into a graph kind.
func kindParam(c *gin.Context) (cascade.Kind, bool) {
	kind := cascade.Kind(c.Param("entity"))
	if !cascade.Known(kind) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown entity"))
		return "", false
	}
	return kind, true
}

// idParam parses the :id path segment.
func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid ID"))
		return 0, false
	}
	return id, true
}

func idFilter(id int) store.Filter     { return store.Eq("id", id) }
func idsFilter(ids []int) store.Filter { return store.In("id", ids) }

// invalidateListings drops cached listings for every kind a cascading
// operation touched. The resolver result is keyed by kind.
func invalidateListings(counts cascade.Result) {
	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}
	entity_cache.Invalidate(kinds...)
}

// toColumnPatch converts camelCase JSON field names into the snake_case
// column names the store expects.
func toColumnPatch(fields map[string]any) store.Patch {
	patch := store.Patch{}
	for k, v := range fields {
		patch[toSnake(k)] = v
	}
	return patch
}

func toSnake(s string) string {
	out := make([]rune, 0, len(s)+4)
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			out = append(out, '_', r+('a'-'A'))
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
