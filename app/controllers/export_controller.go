package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/kashvi-store/app/services"
	"github.com/shashiranjanraj/kashvi-store/pkg/ctx"
)

// ExportController streams admin CSV exports.
type ExportController struct {
	service  *services.ExportService
	activity *services.ActivityService
}

func NewExportController() *ExportController {
	return &ExportController{
		service:  services.NewExportService(),
		activity: services.NewActivityService(),
	}
}

// Download renders one export type (orders, users, gemstones) as a CSV
// attachment. Unknown types are 400.
func (e *ExportController) Download(c *ctx.Context) {
	exportType := c.Param("type")

	body, filename, err := e.service.Export(exportType)
	if err != nil {
		fail(c, err)
		return
	}

	e.activity.Record(adminID(c), "exported_csv", exportType, 0, nil, c.ClientIP())

	c.SetHeader("Content-Type", "text/csv")
	c.SetHeader("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.W.WriteHeader(http.StatusOK)
	c.W.Write(body) //nolint:errcheck
}
