package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/kashvi-store/app/models"
	"github.com/shashiranjanraj/kashvi-store/app/repositories"
	"github.com/shashiranjanraj/kashvi-store/app/services"
	"github.com/shashiranjanraj/kashvi-store/pkg/ctx"
	"github.com/shashiranjanraj/kashvi-store/pkg/middleware"
	"github.com/shashiranjanraj/kashvi-store/pkg/response"
)

// AdminGemstoneController handles catalog administration: CRUD, the
// featured-set manager, and bulk inventory updates.
type AdminGemstoneController struct {
	service  *services.GemstoneService
	gems     *repositories.GemstoneRepository
	activity *services.ActivityService
}

func NewAdminGemstoneController() *AdminGemstoneController {
	return &AdminGemstoneController{
		service:  services.NewGemstoneService(),
		gems:     repositories.NewGemstoneRepository(),
		activity: services.NewActivityService(),
	}
}

type gemstoneInput struct {
	Name              string   `json:"name" validate:"required,min=2,max=255"`
	Type              string   `json:"type" validate:"nullable,max=100"`
	Description       string   `json:"description"`
	Price             float64  `json:"price" validate:"required,gte=0"`
	Images            []string `json:"images"`
	Certification     string   `json:"certification"`
	CategoryID        *uint    `json:"category_id"`
	Featured          bool     `json:"featured"`
	Active            *bool    `json:"active"`
	Stock             int      `json:"stock" validate:"gte=0"`
	LowStockThreshold int      `json:"low_stock_threshold" validate:"gte=0"`
}

func (in gemstoneInput) apply(g *models.Gemstone) {
	g.Name = in.Name
	g.Type = in.Type
	g.Description = in.Description
	g.Price = in.Price
	g.SetImageList(in.Images)
	g.Certification = in.Certification
	g.CategoryID = in.CategoryID
	g.Featured = in.Featured
	g.Stock = in.Stock
	if in.LowStockThreshold > 0 {
		g.LowStockThreshold = in.LowStockThreshold
	}
	g.Active = true
	if in.Active != nil {
		g.Active = *in.Active
	}
}

func adminID(c *ctx.Context) uint {
	id, _ := middleware.UserIDFromCtx(c.Context())
	return id
}

// Index lists all gemstones, including inactive ones.
func (a *AdminGemstoneController) Index(c *ctx.Context) {
	gems, pagination, err := a.gems.AdminList(queryInt(c, "page", 1), queryInt(c, "limit", 20))
	if err != nil {
		fail(c, err)
		return
	}
	response.Paginated(c.W, gems, pagination)
}

// Create adds a gemstone to the catalog.
func (a *AdminGemstoneController) Create(c *ctx.Context) {
	var in gemstoneInput
	if !c.BindJSON(&in) {
		return
	}

	var g models.Gemstone
	in.apply(&g)
	if err := a.service.Create(&g); err != nil {
		fail(c, err)
		return
	}

	a.activity.Record(adminID(c), "created_gemstone", "gemstone", g.ID,
		map[string]interface{}{"name": g.Name}, c.ClientIP())
	c.Created(g)
}

// Update replaces a gemstone's editable fields.
func (a *AdminGemstoneController) Update(c *ctx.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var in gemstoneInput
	if !c.BindJSON(&in) {
		return
	}

	g, err := a.service.Find(id)
	if err != nil {
		fail(c, err)
		return
	}

	in.apply(&g)
	if err := a.service.Update(&g); err != nil {
		fail(c, err)
		return
	}

	a.activity.Record(adminID(c), "updated_gemstone", "gemstone", g.ID,
		map[string]interface{}{"name": g.Name}, c.ClientIP())
	c.Success(g)
}

// Delete removes a gemstone; 400 while order items still reference it.
func (a *AdminGemstoneController) Delete(c *ctx.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	if err := a.service.Delete(id); err != nil {
		fail(c, err)
		return
	}

	a.activity.Record(adminID(c), "deleted_gemstone", "gemstone", id, nil, c.ClientIP())
	c.Success(map[string]string{"message": "Gemstone deleted"})
}

// ── Featured-set manager ─────────────────────────────────────────────────────

// Featured lists the current featured set.
func (a *AdminGemstoneController) Featured(c *ctx.Context) {
	entries, err := a.service.Featured()
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(entries)
}

type featuredInput struct {
	Action      string `json:"action"` // "toggle" or empty for replace
	ProductID   uint   `json:"productId"`
	FeaturedIDs []uint `json:"featuredIds"`
}

// UpdateFeatured handles both featured mutations:
//
//	{"action":"toggle","productId":7}  — flip one flag
//	{"featuredIds":[1,2,3]}            — transactional full replace
//
// A replace with an empty array clears every flag.
func (a *AdminGemstoneController) UpdateFeatured(c *ctx.Context) {
	var in featuredInput
	if !c.BindJSON(&in) {
		return
	}

	switch in.Action {
	case "toggle":
		if in.ProductID == 0 {
			c.Error(http.StatusBadRequest, "productId is required for toggle")
			return
		}
		entry, err := a.service.ToggleFeatured(in.ProductID)
		if err != nil {
			fail(c, err)
			return
		}
		msg := entry.Name + " removed from featured"
		if entry.Featured {
			msg = entry.Name + " added to featured"
		}
		a.activity.Record(adminID(c), "toggled_featured", "gemstone", entry.ID,
			map[string]interface{}{"featured": entry.Featured}, c.ClientIP())
		c.Success(map[string]interface{}{"message": msg, "gemstone": entry})

	case "":
		if in.FeaturedIDs == nil {
			c.Error(http.StatusBadRequest, "featuredIds is required")
			return
		}
		if err := a.service.ReplaceFeatured(in.FeaturedIDs); err != nil {
			fail(c, err)
			return
		}
		a.activity.Record(adminID(c), "replaced_featured", "gemstone", 0,
			map[string]interface{}{"featured_ids": in.FeaturedIDs}, c.ClientIP())
		c.Success(map[string]interface{}{"message": "Featured set updated", "count": len(in.FeaturedIDs)})

	default:
		c.Error(http.StatusBadRequest, "Unknown action")
	}
}

// ── Inventory ────────────────────────────────────────────────────────────────

type inventoryInput struct {
	Adjustments []services.StockAdjustment `json:"adjustments" validate:"required"`
}

// AdjustInventory applies a bulk stock update in one transaction.
func (a *AdminGemstoneController) AdjustInventory(c *ctx.Context) {
	var in inventoryInput
	if !c.BindJSON(&in) {
		return
	}

	if err := a.service.AdjustInventory(in.Adjustments); err != nil {
		fail(c, err)
		return
	}

	a.activity.Record(adminID(c), "adjusted_inventory", "gemstone", 0,
		map[string]interface{}{"lines": len(in.Adjustments)}, c.ClientIP())
	c.Success(map[string]interface{}{"message": "Inventory updated", "count": len(in.Adjustments)})
}
