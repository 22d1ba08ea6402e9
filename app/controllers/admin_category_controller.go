package controllers

import (
	"github.com/shashiranjanraj/kashvi-store/app/models"
	"github.com/shashiranjanraj/kashvi-store/app/repositories"
	"github.com/shashiranjanraj/kashvi-store/app/services"
	"github.com/shashiranjanraj/kashvi-store/pkg/ctx"
	"github.com/shashiranjanraj/kashvi-store/pkg/orm"
)

// AdminCategoryController handles category administration.
type AdminCategoryController struct {
	categories *repositories.CategoryRepository
	gems       *repositories.GemstoneRepository
	activity   *services.ActivityService
}

func NewAdminCategoryController() *AdminCategoryController {
	return &AdminCategoryController{
		categories: repositories.NewCategoryRepository(),
		gems:       repositories.NewGemstoneRepository(),
		activity:   services.NewActivityService(),
	}
}

type categoryInput struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Position    int    `json:"position" validate:"gte=0"`
	Active      *bool  `json:"active"`
}

func (in categoryInput) apply(cat *models.Category) {
	cat.Name = in.Name
	cat.Description = in.Description
	cat.Image = in.Image
	cat.Position = in.Position
	cat.Active = true
	if in.Active != nil {
		cat.Active = *in.Active
	}
}

// Index lists every category, including inactive ones.
func (a *AdminCategoryController) Index(c *ctx.Context) {
	cats, err := a.categories.All()
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(cats)
}

// Create adds a category.
func (a *AdminCategoryController) Create(c *ctx.Context) {
	var in categoryInput
	if !c.BindJSON(&in) {
		return
	}

	var cat models.Category
	in.apply(&cat)
	if err := a.categories.Create(&cat); err != nil {
		fail(c, err)
		return
	}

	a.gems.InvalidateCache()
	a.activity.Record(adminID(c), "created_category", "category", cat.ID,
		map[string]interface{}{"name": cat.Name}, c.ClientIP())
	c.Created(cat)
}

// Update replaces a category's editable fields.
func (a *AdminCategoryController) Update(c *ctx.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var in categoryInput
	if !c.BindJSON(&in) {
		return
	}

	cat, err := a.categories.FindByID(id)
	if err != nil {
		if orm.IsNotFound(err) {
			c.NotFound()
			return
		}
		fail(c, err)
		return
	}

	in.apply(&cat)
	if err := a.categories.Save(&cat); err != nil {
		fail(c, err)
		return
	}

	a.gems.InvalidateCache()
	a.activity.Record(adminID(c), "updated_category", "category", cat.ID,
		map[string]interface{}{"name": cat.Name}, c.ClientIP())
	c.Success(cat)
}

// Delete removes a category; 400 while gemstones still reference it.
func (a *AdminCategoryController) Delete(c *ctx.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	cat, err := a.categories.FindByID(id)
	if err != nil {
		if orm.IsNotFound(err) {
			c.NotFound()
			return
		}
		fail(c, err)
		return
	}

	n, err := a.categories.GemstoneCount(cat.ID)
	if err != nil {
		fail(c, err)
		return
	}
	if n > 0 {
		fail(c, services.ErrDeleteBlocked)
		return
	}

	if err := a.categories.Delete(&cat); err != nil {
		fail(c, err)
		return
	}

	a.gems.InvalidateCache()
	a.activity.Record(adminID(c), "deleted_category", "category", cat.ID, nil, c.ClientIP())
	c.Success(map[string]string{"message": "Category deleted"})
}
