// ════════════════════════════════════════════════════════════
// Path: controllers/entity_controller/delete_entity.go
// Cascading hard delete with optional dry-run
// ════════════════════════════════════════════════════════════

package entity_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kartify-commerce/kartify-backend/models"
)

// DeleteEntity godoc
// @Summary Delete a record and its dependents
// @Description Hard-delete one record plus every dependent per the dependency graph. With isWarning set, only the would-be counts are returned.
// @Tags Entities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entity path string true "Entity name"
// @Param id path int true "Record ID"
// @Param body body deleteOptions false "Options"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /admin/{entity}/delete/{id} [delete]
func (e *EntityController) DeleteEntity(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	var opts deleteOptions
	_ = c.ShouldBindJSON(&opts)

	ctx := c.Request.Context()
	if opts.IsWarning {
		counts, err := e.Resolver.Count(ctx, kind, idFilter(id))
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Dependency counts", counts))
		return
	}

	counts, err := e.Resolver.Delete(ctx, kind, idFilter(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}
	if counts[string(kind)] == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Record not found with specified criteria."))
		return
	}
	invalidateListings(counts)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Record deleted successfully", counts))
}

// DeleteManyEntity godoc
// @Summary Delete many records and their dependents
// @Description Hard-delete a set of records plus their dependents. With isWarning set, only counts are returned.
// @Tags Entities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entity path string true "Entity name"
// @Param body body idsRequest true "Record IDs"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /admin/{entity}/delete-many [post]
func (e *EntityController) DeleteManyEntity(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	var input idsRequest
	if err := c.ShouldBindJSON(&input); err != nil || len(input.IDs) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c,
			"Insufficient request parameters! ids is required."))
		return
	}

	ctx := c.Request.Context()
	if input.IsWarning {
		counts, err := e.Resolver.Count(ctx, kind, idsFilter(input.IDs))
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Dependency counts", counts))
		return
	}

	counts, err := e.Resolver.Delete(ctx, kind, idsFilter(input.IDs))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}
	invalidateListings(counts)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Records deleted successfully", counts))
}
