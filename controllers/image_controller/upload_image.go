// ════════════════════════════════════════════════════════════
// Path: controllers/image_controller/upload_image.go
// Upload an image to Cloudinary and record it
// ════════════════════════════════════════════════════════════

package image_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/kartify-commerce/kartify-backend/middleware"
	"github.com/kartify-commerce/kartify-backend/models"
	"github.com/kartify-commerce/kartify-backend/services"
	"github.com/kartify-commerce/kartify-backend/store"
)

// ImageController stores uploaded media and its database record.
type ImageController struct {
	Store      store.Store
	Cloudinary *services.CloudinaryService
}

// NewImageController builds the controller.
func NewImageController(st store.Store, cld *services.CloudinaryService) *ImageController {
	return &ImageController{Store: st, Cloudinary: cld}
}

// UploadImage godoc
// @Summary Upload an image
// @Description Upload an image file, store it in Cloudinary and create its record. Optionally attach it to a banner or product.
// @Tags Images
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Param bannerId formData int false "Banner to attach to"
// @Param productId formData int false "Product to attach to"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /admin/image/upload [post]
func (i *ImageController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image file is required"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unable to read image file"))
		return
	}
	defer file.Close()

	ctx := c.Request.Context()
	url, err := i.Cloudinary.UploadImage(ctx, file, "", "kartify/images")
	if err != nil {
		log.Error().Err(err).Msg("[image.upload] cloudinary upload failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Image upload failed"))
		return
	}

	userID, _ := middleware.UserIDFromContext(c)
	bannerID, _ := strconv.Atoi(c.PostForm("bannerId"))
	productID, _ := strconv.Atoi(c.PostForm("productId"))

	image := &models.Image{
		URL:       url,
		AltText:   c.PostForm("altText"),
		BannerID:  bannerID,
		ProductID: productID,
		IsActive:  true,
		AddedBy:   userID,
	}
	if err := i.Store.Create(ctx, image); err != nil {
		log.Error().Err(err).Msg("[image.upload] failed to store image record")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Image upload failed"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Image uploaded successfully", image))
}
