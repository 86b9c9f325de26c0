// Package router wires every endpoint to its handler and access rule.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"zoo-api/internal/config"
	"zoo-api/internal/handler"
	"zoo-api/internal/middleware"
	"zoo-api/internal/model"
)

// Deps carries everything the route table needs.
type Deps struct {
	Cfg          config.Config
	RDB          *redis.Client
	Health       *handler.HealthHandler
	Auth         *handler.AuthHandler
	Habitats     *handler.HabitatHandler
	Especies     *handler.EspecieHandler
	Animais      *handler.AnimalHandler
	Alimentacoes *handler.AlimentacaoHandler
	Cuidadores   *handler.CuidadorHandler
	Veterinarios *handler.VeterinarioHandler
	Funcionarios *handler.FuncionarioHandler
	Visitantes   *handler.VisitanteHandler
	Eventos      *handler.EventoHandler
}

// Register sets up the whole route table.  Reads are open to any
// authenticated role; writes require ADMIN or the role that operates
// the entity.  Visitor self-registration and the auth endpoints are
// the only unauthenticated routes besides the health check.
func Register(e *echo.Echo, d Deps) {
	e.GET("/healthz", d.Health.Check)

	e.Use(middleware.TokenBucket(config.LoadRateLimitConfig(), d.RDB))
	cache := middleware.ResponseCache(config.LoadCacheConfig(), d.RDB)

	authn := middleware.JWTAuth(d.Cfg.JWTSecret)
	admin := middleware.RequireRole(model.RoleAdmin)
	staff := middleware.RequireRole(model.RoleAdmin, model.RoleFuncionario)
	keepers := middleware.RequireRole(model.RoleAdmin, model.RoleCuidador)
	vets := middleware.RequireRole(model.RoleAdmin, model.RoleVeterinario)
	enroll := middleware.RequireRole(model.RoleAdmin, model.RoleFuncionario, model.RoleVisitante)

	// Auth.
	ag := e.Group("/v1/auth")
	ag.POST("/login", d.Auth.Login)
	ag.POST("/refresh", d.Auth.Refresh)
	ag.POST("/register", d.Auth.Register, authn, admin)
	ag.POST("/logout", d.Auth.Logout, authn)
	ag.GET("/me", d.Auth.Me, authn)

	v1 := e.Group("/v1", authn)

	// Habitats.
	v1.GET("/habitats", d.Habitats.List, cache)
	v1.GET("/habitats/:id", d.Habitats.Get)
	v1.POST("/habitats", d.Habitats.Create, staff)
	v1.PUT("/habitats/:id", d.Habitats.Update, staff)
	v1.DELETE("/habitats/:id", d.Habitats.Delete, staff)

	// Espécies.
	v1.GET("/especies", d.Especies.List, cache)
	v1.GET("/especies/:id", d.Especies.Get)
	v1.POST("/especies", d.Especies.Create, staff)
	v1.PUT("/especies/:id", d.Especies.Update, staff)
	v1.DELETE("/especies/:id", d.Especies.Delete, staff)

	// Animais.
	v1.GET("/animais", d.Animais.List, cache)
	v1.GET("/animais/:id", d.Animais.Get)
	v1.POST("/animais", d.Animais.Create, keepers)
	v1.PUT("/animais/:id", d.Animais.Update, keepers)
	v1.DELETE("/animais/:id", d.Animais.Delete, keepers)

	// Alimentações.
	v1.GET("/alimentacoes", d.Alimentacoes.List, cache)
	v1.GET("/alimentacoes/:id", d.Alimentacoes.Get)
	v1.POST("/alimentacoes", d.Alimentacoes.Create, keepers)
	v1.PUT("/alimentacoes/:id", d.Alimentacoes.Update, keepers)
	v1.DELETE("/alimentacoes/:id", d.Alimentacoes.Delete, keepers)

	// Cuidadores.
	v1.GET("/cuidadores", d.Cuidadores.List, cache)
	v1.GET("/cuidadores/:id", d.Cuidadores.Get)
	v1.POST("/cuidadores", d.Cuidadores.Create, staff)
	v1.PUT("/cuidadores/:id", d.Cuidadores.Update, staff)
	v1.DELETE("/cuidadores/:id", d.Cuidadores.Delete, staff)

	// Veterinários.
	v1.GET("/veterinarios", d.Veterinarios.List, cache)
	v1.GET("/veterinarios/:id", d.Veterinarios.Get)
	v1.POST("/veterinarios", d.Veterinarios.Create, vets)
	v1.PUT("/veterinarios/:id", d.Veterinarios.Update, vets)
	v1.DELETE("/veterinarios/:id", d.Veterinarios.Delete, vets)

	// Funcionários.
	v1.GET("/funcionarios", d.Funcionarios.List, cache)
	v1.GET("/funcionarios/:id", d.Funcionarios.Get)
	v1.POST("/funcionarios", d.Funcionarios.Create, staff)
	v1.PUT("/funcionarios/:id", d.Funcionarios.Update, staff)
	v1.DELETE("/funcionarios/:id", d.Funcionarios.Delete, staff)

	// Visitantes.  Registration is open so visitors can create their
	// own account.
	e.POST("/v1/visitantes", d.Visitantes.Register)
	v1.GET("/visitantes", d.Visitantes.List)
	v1.GET("/visitantes/:id", d.Visitantes.Get)
	v1.PUT("/visitantes/:id", d.Visitantes.Update, staff)
	v1.DELETE("/visitantes/:id", d.Visitantes.Delete, staff)

	// Eventos.
	v1.GET("/eventos", d.Eventos.List, cache)
	v1.GET("/eventos/:id", d.Eventos.Get)
	v1.GET("/eventos/:id/visitantes", d.Eventos.ListVisitantes)
	v1.POST("/eventos", d.Eventos.Create, staff)
	v1.PUT("/eventos/:id", d.Eventos.Update, staff)
	v1.DELETE("/eventos/:id", d.Eventos.Delete, staff)
	v1.POST("/eventos/:id/visitantes/:visitanteId", d.Eventos.Enroll, enroll)
	v1.DELETE("/eventos/:id/visitantes/:visitanteId", d.Eventos.Withdraw, enroll)
}
