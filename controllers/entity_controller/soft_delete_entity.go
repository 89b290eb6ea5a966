// ════════════════════════════════════════════════════════════
// Path: controllers/entity_controller/soft_delete_entity.go
// Cascading soft delete
// ════════════════════════════════════════════════════════════

package entity_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kartify-commerce/kartify-backend/models"
)

// SoftDeleteEntity godoc
// @Summary Soft-delete a record and its dependents
// @Description Mark one record and every dependent as deleted without removing rows
// @Tags Entities
// @Produce json
// @Security BearerAuth
// @Param entity path string true "Entity name"
// @Param id path int true "Record ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /admin/{entity}/soft-delete/{id} [put]
func (e *EntityController) SoftDeleteEntity(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	counts, err := e.Resolver.SoftDelete(c.Request.Context(), kind, idFilter(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}
	if counts[string(kind)] == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Record not found with specified criteria."))
		return
	}
	invalidateListings(counts)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Record deactivated successfully", counts))
}

// SoftDeleteManyEntity godoc
// @Summary Soft-delete many records and their dependents
// @Description Mark a set of records and their dependents as deleted
// @Tags Entities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entity path string true "Entity name"
// @Param body body idsRequest true "Record IDs"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /admin/{entity}/soft-delete-many [put]
func (e *EntityController) SoftDeleteManyEntity(c *gin.Context) {
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

	counts, err := e.Resolver.SoftDelete(c.Request.Context(), kind, idsFilter(input.IDs))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}
	invalidateListings(counts)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Records deactivated successfully", counts))
}
