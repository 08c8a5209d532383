// @title           mailr.io Admin API
// @version         1.0
// @description     Backend for the mailr.io admin dashboard: domains, CSV imports, inbox orders, pricing, subscriptions and the unified inbox.

// @contact.name   API Support
// @contact.email  info@bentech.app

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/vit0-9/mailr_api/docs"
	"github.com/vit0-9/mailr_api/handlers"
	"github.com/vit0-9/mailr_api/pkg/configuration"
	"github.com/vit0-9/mailr_api/pkg/eventbus"
	"github.com/vit0-9/mailr_api/pkg/metrics"
	"github.com/vit0-9/mailr_api/pkg/middleware"
	"github.com/vit0-9/mailr_api/pkg/services"
	"github.com/vit0-9/mailr_api/pkg/store"
	"github.com/vit0-9/mailr_api/pkg/utils/validate"
	"github.com/vit0-9/mailr_api/pkg/views"
)

// App encapsulates all the components of the application
type App struct {
	Router *gin.Engine
	Stores *store.Stores

	DomainHandlers       *handlers.DomainHandlers
	OrderHandlers        *handlers.OrderHandlers
	PricingHandlers      *handlers.PricingHandlers
	SubscriptionHandlers *handlers.SubscriptionHandlers
	InboxHandlers        *handlers.InboxHandlers
	DashboardHandlers    *handlers.DashboardHandlers
	ViewHandlers         *handlers.ViewHandlers
	HealthHandler        *handlers.HealthHandler

	conf *configuration.Configuration
	log  *logrus.Logger
}

// NewApp wires the seeded stores, services and handlers into a router.
func NewApp(conf *configuration.Configuration) (*App, error) {
	log := conf.Logger()
	if err := validate.RegisterGinValidators(); err != nil {
		return nil, err
	}

	bus := eventbus.NewEventPublisher(log)
	registerAuditLog(bus, log)
	stores := store.NewSeeded(bus)
	if conf.Prometheus.Enabled {
		metrics.NewSubscriber(stores).Register(bus)
	}

	opts := handlers.Options{
		PageSize:      conf.PageSize,
		MaxPageSize:   conf.MaxPageSize,
		MaxUploadSize: conf.MaxUploadSize,
		SessionHeader: conf.SessionHeader,
	}
	domainService := services.NewDomainService(stores.Domains, stores.Subscriptions, log)
	orderService := services.NewOrderService(stores.Orders, log)
	subscriptionService := services.NewSubscriptionService(stores.Subscriptions, log)
	inboxService := services.NewInboxService(stores.Messages)
	registry := views.NewRegistry(conf.PageSize)

	app := &App{
		Router:               gin.New(),
		Stores:               stores,
		DomainHandlers:       handlers.NewDomainHandlers(domainService, registry, opts),
		OrderHandlers:        handlers.NewOrderHandlers(orderService, opts),
		PricingHandlers:      handlers.NewPricingHandlers(),
		SubscriptionHandlers: handlers.NewSubscriptionHandlers(subscriptionService, opts),
		InboxHandlers:        handlers.NewInboxHandlers(inboxService, opts),
		DashboardHandlers:    handlers.NewDashboardHandlers(services.NewDashboardService(stores), stores),
		ViewHandlers:         handlers.NewViewHandlers(registry, stores, opts),
		HealthHandler:        handlers.NewHealthHandler(),
		conf:                 conf,
		log:                  log,
	}

	app.setupMiddleware()
	app.setupRoutes()
	return app, nil
}

// registerAuditLog logs every store mutation.
func registerAuditLog(bus eventbus.EventBus, log *logrus.Logger) {
	audit := func(entity, action string, ids []string) {
		log.WithFields(logrus.Fields{"entity": entity, "action": action, "ids": ids}).Debug("store changed")
	}
	bus.Subscribe(func(e store.DomainsChanged) { audit("domain", e.Action, e.IDs) })
	bus.Subscribe(func(e store.OrdersChanged) { audit("order", e.Action, e.IDs) })
	bus.Subscribe(func(e store.SubscriptionsChanged) { audit("subscription", e.Action, e.IDs) })
	bus.Subscribe(func(e store.MessagesChanged) { audit("message", e.Action, e.IDs) })
}

func (app *App) setupMiddleware() {
	app.Router.Use(gin.Recovery())
	app.Router.Use(middleware.RequestLogger(app.log, app.conf.RequestIDHeader))
	if app.conf.Prometheus.Enabled {
		app.Router.Use(metrics.Instrument())
	}
	if !app.conf.RateLimit.Enabled {
		return
	}

	limiterStore := middleware.NewMemoryStore()
	if app.conf.RateLimit.Storage == "redis" {
		redisStore, err := middleware.NewRedisStore(app.conf.RateLimit.RedisURL)
		if err != nil {
			app.log.WithError(err).Warn("redis rate limit store unavailable, falling back to memory")
		} else {
			limiterStore = redisStore
		}
	}
	app.Router.Use(middleware.RateLimit(middleware.RateLimitConfig{
		RequestsPerPeriod: app.conf.RateLimit.GlobalRPS,
		Store:             limiterStore,
	}))
}

// setupRoutes defines all the application routes
func (app *App) setupRoutes() {
	v1 := app.Router.Group("/api/v1")
	v1.GET("/health", app.HealthHandler.HealthCheckHandler)
	v1.GET("/dashboard", app.DashboardHandlers.DashboardHandler)
	v1.GET("/search", app.DashboardHandlers.SearchHandler)

	domains := v1.Group("/domains")
	{
		domains.GET("", app.DomainHandlers.ListDomainsHandler)
		domains.GET("/export.csv", app.DomainHandlers.ExportCSVHandler)
		domains.GET("/export.xlsx", app.DomainHandlers.ExportXLSXHandler)
		domains.POST("/import/preview", app.DomainHandlers.PreviewImportHandler)
		domains.POST("/import", app.DomainHandlers.ImportDomainsHandler)
		domains.POST("/forwarding", app.DomainHandlers.UpdateForwardingHandler)
		domains.POST("/select", app.DomainHandlers.SelectDomainsHandler)
		domains.POST("/select-all", app.DomainHandlers.SelectAllDomainsHandler)
		domains.GET("/:id", app.DomainHandlers.GetDomainHandler)
		domains.DELETE("/:id", app.DomainHandlers.DeleteDomainHandler)
		domains.POST("/:id/swap", app.DomainHandlers.SwapDomainHandler)
		domains.GET("/:id/nameservers", app.DomainHandlers.GetNameserversHandler)
		domains.POST("/:id/nameservers", app.DomainHandlers.ConfirmNameserversHandler)
	}

	orders := v1.Group("/orders")
	{
		orders.GET("", app.OrderHandlers.ListOrdersHandler)
		orders.POST("/inboxes", app.OrderHandlers.PlaceInboxOrderHandler)
		orders.POST("/domains", app.OrderHandlers.PlaceDomainOrderHandler)
		orders.GET("/:id", app.OrderHandlers.GetOrderHandler)
		orders.GET("/:id/inboxes", app.OrderHandlers.OrderInboxesHandler)
		orders.POST("/:id/cancel", app.OrderHandlers.CancelOrderHandler)
	}

	pricing := v1.Group("/pricing")
	{
		pricing.GET("/quote", app.PricingHandlers.QuoteHandler)
		pricing.GET("/tables", app.PricingHandlers.TablesHandler)
	}

	subscriptions := v1.Group("/subscriptions")
	{
		subscriptions.GET("", app.SubscriptionHandlers.ListSubscriptionsHandler)
		subscriptions.GET("/:id", app.SubscriptionHandlers.GetSubscriptionHandler)
		subscriptions.POST("/:id/cancel", app.SubscriptionHandlers.CancelSubscriptionHandler)
		subscriptions.POST("/:id/slots", app.SubscriptionHandlers.AddSlotsHandler)
	}

	inbox := v1.Group("/inbox")
	{
		inbox.GET("", app.InboxHandlers.ListMessagesHandler)
		inbox.POST("/:id/read", app.InboxHandlers.MarkReadHandler)
	}

	tableViews := v1.Group("/views")
	{
		tableViews.GET("/:table", app.ViewHandlers.GetViewHandler)
		tableViews.POST("/:table/sort", app.ViewHandlers.SortViewHandler)
		tableViews.POST("/:table/page", app.ViewHandlers.PageViewHandler)
		tableViews.POST("/:table/filter", app.ViewHandlers.FilterViewHandler)
	}

	if app.conf.Prometheus.Enabled {
		app.Router.GET(app.conf.Prometheus.Path, metrics.Handler())
	}
	if app.conf.SwaggerEnabled {
		app.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
	}
}

// Start runs the Gin HTTP server
func (app *App) Start(addr string) error {
	app.log.Infof("API server starting on %s", addr)
	return app.Router.Run(addr)
}
