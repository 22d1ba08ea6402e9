package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/kashvi-store/pkg/ctx"
	"github.com/shashiranjanraj/kashvi-store/pkg/database"
	"github.com/shashiranjanraj/kashvi-store/pkg/ws"
)

// OrderFeed is the websocket hub broadcasting order events to connected
// admin dashboards. Listeners that publish into it live in app/jobs.
var OrderFeed = ws.NewHub()

func init() { go OrderFeed.Run() }

// OpsController serves the liveness probe and the admin live feed.
type OpsController struct{}

func NewOpsController() *OpsController {
	return &OpsController{}
}

// Health reports liveness; degrades to 503 when the database is gone.
func (o *OpsController) Health(c *ctx.Context) {
	status := "ok"
	code := http.StatusOK

	if database.DB == nil {
		status, code = "degraded", http.StatusServiceUnavailable
	} else if sqlDB, err := database.DB.DB(); err != nil || sqlDB.Ping() != nil {
		status, code = "degraded", http.StatusServiceUnavailable
	}

	c.JSON(code, map[string]string{"status": status})
}

// Feed upgrades the connection and attaches it to the order event hub.
func (o *OpsController) Feed(c *ctx.Context) {
	ws.Upgrade(c.W, c.R, OrderFeed)
}
