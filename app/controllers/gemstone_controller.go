package controllers

import (
	"github.com/shashiranjanraj/kashvi-store/app/models"
	"github.com/shashiranjanraj/kashvi-store/app/repositories"
	"github.com/shashiranjanraj/kashvi-store/app/services"
	"github.com/shashiranjanraj/kashvi-store/pkg/ctx"
	"github.com/shashiranjanraj/kashvi-store/pkg/orm"
	"github.com/shashiranjanraj/kashvi-store/pkg/response"
)

// GemstoneController serves the public catalog.
type GemstoneController struct {
	gems    *repositories.GemstoneRepository
	reviews *services.ReviewService
}

func NewGemstoneController() *GemstoneController {
	return &GemstoneController{
		gems:    repositories.NewGemstoneRepository(),
		reviews: services.NewReviewService(),
	}
}

// Index lists active gemstones with filters and pagination.
// Query params: featured=true, category, type, q, page, limit.
func (g *GemstoneController) Index(c *ctx.Context) {
	filter := repositories.GemstoneFilter{
		Featured: c.Query("featured") == "true",
		Category: c.Query("category"),
		Type:     c.Query("type"),
		Search:   c.Query("q"),
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 20),
	}

	// The plain featured carousel is the hot path; serve it cached.
	if filter.Featured && filter.Category == "" && filter.Type == "" && filter.Search == "" {
		gems, err := g.gems.FeaturedActive()
		if err != nil {
			fail(c, err)
			return
		}
		c.Success(gems)
		return
	}

	gems, pagination, err := g.gems.List(filter)
	if err != nil {
		fail(c, err)
		return
	}
	response.Paginated(c.W, gems, pagination)
}

// Show returns one active gemstone; inactive rows are hidden from the public.
func (g *GemstoneController) Show(c *ctx.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	gem, err := g.gems.FindByID(id)
	if err != nil {
		if orm.IsNotFound(err) {
			c.NotFound()
			return
		}
		fail(c, err)
		return
	}
	if !gem.Active {
		c.NotFound()
		return
	}
	c.Success(gem)
}

// Reviews lists a gemstone's reviews with reviewer names.
func (g *GemstoneController) Reviews(c *ctx.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	rows, err := g.reviews.ForGemstone(id)
	if err != nil {
		fail(c, err)
		return
	}
	if rows == nil {
		rows = []models.Review{}
	}
	c.Success(rows)
}
