package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/kashvi-store/app/models"
	"github.com/shashiranjanraj/kashvi-store/app/repositories"
	"github.com/shashiranjanraj/kashvi-store/app/services"
	"github.com/shashiranjanraj/kashvi-store/pkg/ctx"
	"github.com/shashiranjanraj/kashvi-store/pkg/orm"
)

// AdminContentController handles CRUD for every storefront content section.
// The five content models share one shape, so the handlers are generic and
// dispatched on the {section} path parameter.
type AdminContentController struct {
	activity *services.ActivityService
}

func NewAdminContentController() *AdminContentController {
	return &AdminContentController{activity: services.NewActivityService()}
}

// Index lists every row of a section, including inactive ones.
func (a *AdminContentController) Index(c *ctx.Context) {
	a.dispatch(c, "index")
}

// Create adds a row to a section.
func (a *AdminContentController) Create(c *ctx.Context) {
	a.dispatch(c, "create")
}

// Update replaces a row's fields.
func (a *AdminContentController) Update(c *ctx.Context) {
	a.dispatch(c, "update")
}

// Delete removes a row.
func (a *AdminContentController) Delete(c *ctx.Context) {
	a.dispatch(c, "delete")
}

func (a *AdminContentController) dispatch(c *ctx.Context, op string) {
	switch c.Param("section") {
	case "homepage-sections":
		contentOp[models.HomepageSection](a, c, op)
	case "banners":
		contentOp[models.Banner](a, c, op)
	case "testimonials":
		contentOp[models.Testimonial](a, c, op)
	case "faqs":
		contentOp[models.FAQ](a, c, op)
	case "press":
		contentOp[models.PressArticle](a, c, op)
	default:
		c.Error(http.StatusNotFound, "Unknown content section")
	}
}

func contentOp[T any](a *AdminContentController, c *ctx.Context, op string) {
	section := c.Param("section")

	switch op {
	case "index":
		rows, err := repositories.ContentAll[T]()
		if err != nil {
			fail(c, err)
			return
		}
		c.Success(rows)

	case "create":
		var row T
		if !c.BindJSON(&row) {
			return
		}
		if err := repositories.ContentCreate(&row); err != nil {
			fail(c, err)
			return
		}
		a.activity.Record(adminID(c), "created_content", section, 0, nil, c.ClientIP())
		c.Created(row)

	case "update":
		id, ok := paramUint(c, "id")
		if !ok {
			return
		}
		row, err := repositories.ContentFind[T](id)
		if err != nil {
			if orm.IsNotFound(err) {
				c.NotFound()
				return
			}
			fail(c, err)
			return
		}
		if !c.BindJSON(&row) {
			return
		}
		if err := repositories.ContentSave(&row); err != nil {
			fail(c, err)
			return
		}
		a.activity.Record(adminID(c), "updated_content", section, id, nil, c.ClientIP())
		c.Success(row)

	case "delete":
		id, ok := paramUint(c, "id")
		if !ok {
			return
		}
		row, err := repositories.ContentFind[T](id)
		if err != nil {
			if orm.IsNotFound(err) {
				c.NotFound()
				return
			}
			fail(c, err)
			return
		}
		if err := repositories.ContentDelete(&row); err != nil {
			fail(c, err)
			return
		}
		a.activity.Record(adminID(c), "deleted_content", section, id, nil, c.ClientIP())
		c.Success(map[string]string{"message": "Deleted"})
	}
}
