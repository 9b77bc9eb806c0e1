package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/store-admin-api/internal/container"
	handlers "github.com/oksasatya/store-admin-api/internal/interface/http"
	"github.com/oksasatya/store-admin-api/internal/interface/middleware"
	"github.com/oksasatya/store-admin-api/pkg/helpers"
)

// CatalogModule wires the ownership-scoped catalog routes under
// /api/:storeId. Creates require an authenticated owner; lists are public.
type CatalogModule struct {
	Billboards *handlers.Resource[handlers.BillboardRequest]
	Categories *handlers.Resource[handlers.CategoryRequest]
	Sizes      *handlers.Resource[handlers.SizeRequest]
	Colors     *handlers.Resource[handlers.ColorRequest]
	Products   *handlers.Resource[handlers.ProductRequest]
	Upload     *handlers.UploadHandler
	Search     *handlers.SearchHandler
	JWT        *helpers.JWTManager
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	st := rg.Group("/:storeId")
	st.Use(middleware.Identity(container.GetRedis(), m.JWT))

	st.POST("/billboards", m.Billboards.CreateHandler())
	st.GET("/billboards", m.Billboards.ListHandler())

	st.POST("/categories", m.Categories.CreateHandler())
	st.GET("/categories", m.Categories.ListHandler())

	st.POST("/sizes", m.Sizes.CreateHandler())
	st.GET("/sizes", m.Sizes.ListHandler())

	st.POST("/colors", m.Colors.CreateHandler())
	st.GET("/colors", m.Colors.ListHandler())

	st.POST("/products", m.Products.CreateHandler())
	st.GET("/products", m.Products.ListHandler())
	st.GET("/products/search", m.Search.Products)

	st.POST("/upload", m.Upload.Upload)
}
