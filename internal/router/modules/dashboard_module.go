package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/store-admin-api/internal/interface/http"
)

// DashboardModule wires the server-rendered pages under /dashboard.
type DashboardModule struct {
	Handler *handlers.DashboardHandler
}

func NewDashboard(h *handlers.DashboardHandler) *DashboardModule {
	return &DashboardModule{Handler: h}
}

func (m *DashboardModule) Register(rg *gin.RouterGroup) {
	rg.GET("/:storeId/billboards", m.Handler.BillboardsPage)
}
