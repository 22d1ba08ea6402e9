package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/kashvi-store/app/models"
	"github.com/shashiranjanraj/kashvi-store/app/repositories"
	"github.com/shashiranjanraj/kashvi-store/pkg/ctx"
)

// ContentController serves public storefront content by section name.
type ContentController struct{}

func NewContentController() *ContentController {
	return &ContentController{}
}

// Show returns active rows of one content section:
// homepage-sections, banners, testimonials, faqs, press.
func (cc *ContentController) Show(c *ctx.Context) {
	var (
		data interface{}
		err  error
	)

	switch c.Param("section") {
	case "homepage-sections":
		data, err = repositories.ContentActiveOrdered[models.HomepageSection]()
	case "banners":
		data, err = repositories.ContentActiveOrdered[models.Banner]()
	case "testimonials":
		data, err = repositories.ContentActiveOrdered[models.Testimonial]()
	case "faqs":
		data, err = repositories.ContentActiveOrdered[models.FAQ]()
	case "press":
		data, err = repositories.ContentActiveOrdered[models.PressArticle]()
	default:
		c.Error(http.StatusNotFound, "Unknown content section")
		return
	}

	if err != nil {
		fail(c, err)
		return
	}
	c.Success(data)
}
