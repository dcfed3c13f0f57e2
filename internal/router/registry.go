package router

import "github.com/gin-gonic/gin"

// Module is one feature area of the API: auth, catalog, forum, cart, orders,
// chat or moderation. Each module mounts its own routes; cross-cutting
// middleware belongs to the registry, not to the modules.
type Module interface {
	Register(rg *gin.RouterGroup)
}

// Registry mounts every feature module under the shared /api group. The
// identity and authorization middleware added with Use wrap the whole group,
// so the route policy sees every API request exactly once.
type Registry struct {
	engine  *gin.Engine
	chain   []gin.HandlerFunc
	modules []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{engine: engine}
}

// Use appends group-level middleware. Call before RegisterAll.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.chain = append(r.chain, mw...)
}

func (r *Registry) Add(mods ...Module) {
	r.modules = append(r.modules, mods...)
}

// RegisterAll creates the /api group with the middleware chain attached and
// lets each module mount its routes on it.
func (r *Registry) RegisterAll() {
	api := r.engine.Group("/api", r.chain...)
	for _, m := range r.modules {
		m.Register(api)
	}
}
