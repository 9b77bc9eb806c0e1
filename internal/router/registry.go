package router

import "github.com/gin-gonic/gin"

// Registry collects modules and registers them under /api, plus
// server-rendered page modules under /dashboard.
type Registry struct {
	Engine      *gin.Engine
	API         *gin.RouterGroup
	Pages       *gin.RouterGroup
	middlewares []gin.HandlerFunc
	apiModules  []Module
	pageModules []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{
		Engine: engine,
		API:    engine.Group("/api"),
		Pages:  engine.Group("/dashboard"),
	}
}

func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mod Module) {
	r.apiModules = append(r.apiModules, mod)
}

func (r *Registry) AddPage(mod Module) {
	r.pageModules = append(r.pageModules, mod)
}

func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
	}
	for _, m := range r.apiModules {
		m.Register(r.API)
	}
	for _, m := range r.pageModules {
		m.Register(r.Pages)
	}
}
