package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/kashvi-store/app/services"
	"github.com/shashiranjanraj/kashvi-store/pkg/ctx"
)

// UploadController stores admin image uploads.
type UploadController struct {
	service  *services.UploadService
	activity *services.ActivityService
}

func NewUploadController() *UploadController {
	return &UploadController{
		service:  services.NewUploadService(),
		activity: services.NewActivityService(),
	}
}

// Store accepts a multipart "file" field and returns the stored public URL.
func (u *UploadController) Store(c *ctx.Context) {
	file, header, err := c.R.FormFile("file")
	if err != nil {
		c.Error(http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	url, err := u.service.Store(file, header)
	if err != nil {
		c.Error(http.StatusBadRequest, err.Error())
		return
	}

	u.activity.Record(adminID(c), "uploaded_image", "upload", 0,
		map[string]interface{}{"url": url}, c.ClientIP())
	c.Created(map[string]string{"url": url})
}
