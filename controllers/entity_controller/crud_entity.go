// ════════════════════════════════════════════════════════════
// Path: controllers/entity_controller/crud_entity.go
// Generic create/list/get/update over the entity registry
// ════════════════════════════════════════════════════════════

package entity_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	entity_cache "github.com/kartify-commerce/kartify-backend/cache"
	"github.com/kartify-commerce/kartify-backend/cascade"
	"github.com/kartify-commerce/kartify-backend/models"
	"github.com/kartify-commerce/kartify-backend/store"
)

// CrudController serves plain CRUD for every registered entity. The
// cascading deletes live on EntityController; this covers the rest.
type CrudController struct {
	Store store.Store
}

// NewCrudController builds the generic CRUD controller.
func NewCrudController(st store.Store) *CrudController {
	return &CrudController{Store: st}
}

// CreateEntity godoc
// @Summary Create a record
// @Tags Entities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entity path string true "Entity name"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /admin/{entity}/create [post]
func (ct *CrudController) CreateEntity(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	record := cascade.NewModel(kind)
	if err := c.ShouldBindJSON(record); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}
	if err := ct.Store.Create(c.Request.Context(), record); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}
	entity_cache.Invalidate(string(kind))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Record created successfully", record))
}

// ListEntity godoc
// @Summary List records
// @Tags Entities
// @Produce json
// @Security BearerAuth
// @Param entity path string true "Entity name"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /admin/{entity}/list [post]
func (ct *CrudController) ListEntity(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	if cached, ok := entity_cache.GetList(string(kind)); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Records found", cached))
		return
	}
	rows := cascade.NewSlice(kind)
	err := ct.Store.FindAll(c.Request.Context(), rows, store.Eq("is_deleted", false))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}
	entity_cache.SetList(string(kind), rows)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Records found", rows))
}

// GetEntity godoc
// @Summary Get one record
// @Tags Entities
// @Produce json
// @Security BearerAuth
// @Param entity path string true "Entity name"
// @Param id path int true "Record ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/{entity}/{id} [get]
func (ct *CrudController) GetEntity(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	record := cascade.NewModel(kind)
	err := ct.Store.FindOne(c.Request.Context(), record, store.And(
		store.Eq("id", id),
		store.Eq("is_deleted", false)))
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Record not found with specified criteria."))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Record found", record))
}

// UpdateEntity godoc
// @Summary Update a record
// @Tags Entities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entity path string true "Entity name"
// @Param id path int true "Record ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/{entity}/update/{id} [put]
func (ct *CrudController) UpdateEntity(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil || len(patch) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}
	// Identity and bookkeeping columns are not updatable through the
	// generic endpoint.
	delete(patch, "id")
	delete(patch, "password")
	delete(patch, "createdAt")
	delete(patch, "updatedAt")

	n, err := ct.Store.Update(c.Request.Context(), cascade.NewModel(kind), store.Eq("id", id), toColumnPatch(patch))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}
	if n == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Record not found with specified criteria."))
		return
	}
	entity_cache.Invalidate(string(kind))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Record updated successfully", nil))
}
