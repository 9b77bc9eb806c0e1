package router

import (
	"github.com/oksasatya/store-admin-api/internal/application"
	"github.com/oksasatya/store-admin-api/internal/container"
	pginfra "github.com/oksasatya/store-admin-api/internal/infrastructure/postgres"
	"github.com/oksasatya/store-admin-api/internal/infrastructure/search"
	handlers "github.com/oksasatya/store-admin-api/internal/interface/http"
	"github.com/oksasatya/store-admin-api/internal/router/modules"
)

// InitModules builds repositories, services and handlers from the container
// singletons and registers every feature module. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	guard := application.NewOwnershipGuard(pginfra.NewStoreRepository(pool))

	billboards := pginfra.NewBillboardRepository(pool)
	idx := search.NewProductsIndex(container.GetES(), cfg.ESProductsIndex, logger)

	catalog := &modules.CatalogModule{
		Billboards: handlers.NewBillboardResource(billboards, guard, logger),
		Categories: handlers.NewCategoryResource(pginfra.NewCategoryRepository(pool), guard, logger),
		Sizes:      handlers.NewSizeResource(pginfra.NewSizeRepository(pool), guard, logger),
		Colors:     handlers.NewColorResource(pginfra.NewColorRepository(pool), guard, logger),
		Products:   handlers.NewProductResource(pginfra.NewProductRepository(pool), idx, guard, logger),
		Upload:     handlers.NewUploadHandler(container.GetGCS(), cfg.GCSBucket, guard, logger),
		Search:     handlers.NewSearchHandler(idx, logger),
		JWT:        container.GetJWT(),
	}
	r.Add(catalog)

	authSvc := application.NewAuthService(pginfra.NewUserRepository(pool), container.GetJWT(), container.GetRedis(), logger)
	authHandler := handlers.NewAuthHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure)
	r.Add(modules.NewAuth(authHandler, container.GetJWT()))

	r.AddPage(modules.NewDashboard(handlers.NewDashboardHandler(billboards, logger)))
}
