package controllers

import (
	"github.com/shashiranjanraj/kashvi-store/app/services"
	"github.com/shashiranjanraj/kashvi-store/pkg/ctx"
)

// AnalyticsController serves the admin dashboard aggregation.
type AnalyticsController struct {
	service  *services.AnalyticsService
	activity *services.ActivityService
}

func NewAnalyticsController() *AnalyticsController {
	return &AnalyticsController{
		service:  services.NewAnalyticsService(),
		activity: services.NewActivityService(),
	}
}

// Dashboard returns the full analytics payload in one response. Any
// database error aborts with a generic 500 — no partial payloads.
func (a *AnalyticsController) Dashboard(c *ctx.Context) {
	d, err := a.service.Dashboard()
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(d)
}

// Activity returns the most recent admin audit rows.
func (a *AnalyticsController) Activity(c *ctx.Context) {
	rows, err := a.activity.Recent(queryInt(c, "limit", 50))
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(rows)
}
