package controllers

import (
	"github.com/shashiranjanraj/kashvi-store/app/repositories"
	"github.com/shashiranjanraj/kashvi-store/pkg/ctx"
)

// CategoryController serves public category listings.
type CategoryController struct {
	categories *repositories.CategoryRepository
}

func NewCategoryController() *CategoryController {
	return &CategoryController{categories: repositories.NewCategoryRepository()}
}

// Index lists active categories ordered by display position.
func (cc *CategoryController) Index(c *ctx.Context) {
	cats, err := cc.categories.ActiveOrdered()
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(cats)
}
