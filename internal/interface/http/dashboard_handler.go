package handlers

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/store-admin-api/internal/domain/repository"
	"github.com/oksasatya/store-admin-api/internal/presenter"
	"github.com/oksasatya/store-admin-api/pkg/response"
)

const billboardsPage = `<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <title>Billboards</title>
</head>
<body>
  <h1>Billboards ({{len .Rows}})</h1>
  <table>
    <thead>
      <tr><th>Label</th><th>Date</th></tr>
    </thead>
    <tbody>
      {{range .Rows}}<tr data-id="{{.ID}}"><td>{{.Label}}</td><td>{{.CreatedAt}}</td></tr>
      {{end}}
    </tbody>
  </table>
</body>
</html>
`

var billboardsTmpl = template.Must(template.New("billboards").Parse(billboardsPage))

// DashboardHandler renders the server-side billboards table: newest first,
// dates pre-formatted by the presenter.
type DashboardHandler struct {
	Billboards repository.BillboardRepository
	Logger     *logrus.Logger
}

func NewDashboardHandler(billboards repository.BillboardRepository, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{Billboards: billboards, Logger: logger}
}

func (h *DashboardHandler) BillboardsPage(c *gin.Context) {
	storeID := c.Param("storeId")
	if storeID == "" {
		response.PlainError(c, http.StatusUnprocessableEntity, "Store ID is required")
		return
	}

	items, err := h.Billboards.ListByStoreRecentFirst(c.Request.Context(), storeID)
	if err != nil {
		h.Logger.WithError(err).WithFields(logrus.Fields{
			"handler":    "dashboard_billboards",
			"request_id": c.GetString("request_id"),
		}).Error("unhandled error")
		response.InternalError(c)
		return
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := billboardsTmpl.Execute(c.Writer, gin.H{"Rows": presenter.BillboardRows(items)}); err != nil {
		h.Logger.WithError(err).WithField("handler", "dashboard_billboards").Error("template render failed")
	}
}
