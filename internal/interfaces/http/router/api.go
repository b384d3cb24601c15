package router

import (
	"github.com/aims/backend/internal/domain/identity"
	"github.com/aims/backend/internal/infrastructure/auth"
	"github.com/aims/backend/internal/infrastructure/config"
	"github.com/aims/backend/internal/infrastructure/logger"
	"github.com/aims/backend/internal/interfaces/http/handler"
	"github.com/aims/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers served by the API
type Handlers struct {
	Auth         *handler.AuthHandler
	Dashboard    *handler.DashboardHandler
	System       *handler.SystemHandler
	Category     *handler.CategoryHandler
	Manufacturer *handler.ManufacturerHandler
	Location     *handler.LocationHandler
	Asset        *handler.AssetHandler
	User         *handler.UserHandler
}

// Options configures the engine built by New
type Options struct {
	HTTP        config.HTTPConfig
	JWT         *auth.JWTService
	Logger      *zap.Logger
	Meter       metric.Meter // nil disables HTTP metrics
	ServiceName string
	Tracing     bool
	// LoginLimiter throttles POST /auth/login per client; nil disables it
	LoginLimiter *middleware.RateLimiter
}

var (
	superAdmin       = string(identity.RoleSuperAdmin)
	inventoryManager = string(identity.RoleInventoryManager)
	inventoryUser    = string(identity.RoleInventoryUser)
)

// New builds the gin engine: the global middleware stack, /health, the
// swagger UI and the role-guarded /api/v1 groups.
func New(h Handlers, opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	engine := gin.New()
	if len(opts.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(opts.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Order matters: the request id must exist before logging, and the span
	// before anything that annotates it.
	engine.Use(middleware.RequestID())
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: opts.ServiceName,
		Enabled:     opts.Tracing,
	}))
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.HTTPMetrics(opts.Meter))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfigFromHTTP(opts.HTTP)))
	engine.Use(middleware.BodyLimit(opts.HTTP.MaxBodySize))

	engine.GET("/health", h.System.Health)
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:    opts.HTTP.SwaggerEnabled,
			AllowedIPs: opts.HTTP.SwaggerAllowedIPs,
		}),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	r := NewRouter(engine, WithAPIVersion("v1"))
	jwtConfig := middleware.DefaultJWTConfig(opts.JWT)
	jwtConfig.Logger = log
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig), middleware.SpanAttributes())

	for _, group := range apiGroups(h, opts, log) {
		r.Register(group)
	}
	r.Setup()

	return engine
}

// apiGroups declares every API group with the roles allowed to reach it
func apiGroups(h Handlers, opts Options, log *zap.Logger) []*DomainGroup {
	guard := func(roles ...string) gin.HandlerFunc {
		return middleware.RequireRoleWithConfig(middleware.RoleConfig{Logger: log}, roles...)
	}

	login := []gin.HandlerFunc{h.Auth.Login}
	if opts.LoginLimiter != nil {
		login = append([]gin.HandlerFunc{middleware.RateLimit(opts.LoginLimiter)}, login...)
	}
	authRoutes := NewDomainGroup("auth", "/auth").
		POST("/login", login...).
		GET("/me", guard(superAdmin, inventoryManager, inventoryUser), h.Auth.Me)

	dashboardRoutes := NewDomainGroup("dashboard", "/dashboard").
		Use(guard(superAdmin, inventoryManager, inventoryUser)).
		GET("/stats", h.Dashboard.Stats)

	systemRoutes := NewDomainGroup("system", "/system").
		Use(guard(superAdmin)).
		GET("/info", h.System.GetSystemInfo)

	categoryRoutes := NewDomainGroup("categories", "/categories").
		Use(guard(superAdmin)).
		Resource(h.Category)

	userRoutes := NewDomainGroup("users", "/users").
		Use(guard(superAdmin)).
		Resource(h.User)

	manufacturerRoutes := NewDomainGroup("manufacturers", "/manufacturers").
		Use(guard(superAdmin, inventoryManager)).
		Resource(h.Manufacturer)

	locationRoutes := NewDomainGroup("locations", "/locations").
		Use(guard(superAdmin, inventoryManager)).
		Resource(h.Location)

	assetRoutes := NewDomainGroup("assets", "/assets").
		Use(guard(superAdmin, inventoryUser)).
		GET("/options", h.Asset.Options).
		Resource(h.Asset)

	return []*DomainGroup{
		authRoutes,
		dashboardRoutes,
		systemRoutes,
		categoryRoutes,
		userRoutes,
		manufacturerRoutes,
		locationRoutes,
		assetRoutes,
	}
}
