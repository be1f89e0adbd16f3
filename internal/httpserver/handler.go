package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gauravmalhotra04/raiden-ai/internal/middleware"
	"github.com/gauravmalhotra04/raiden-ai/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.appConfig)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.AccessLog())
	srv.gin.Use(mw.CORS())

	ctx := context.Background()
	origins := srv.appConfig.CORS.AllowedOrigins
	if srv.environment == string(model.EnvironmentProduction) && (len(origins) == 0 || origins[0] == "*") {
		srv.l.Warnf(ctx, "CORS mode: production with every origin allowed")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s, origins: %v", srv.environment, origins)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers the push endpoint and every domain under /api/v1.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()

	if srv.hub != nil {
		srv.gin.GET("/ws", srv.hub.Handle)
		srv.l.Infof(ctx, "Push channel registered at GET /ws")
	} else {
		srv.l.Infof(ctx, "Push hub not configured, skipping /ws")
	}

	api := srv.gin.Group("/api/v1")

	if err := srv.setupTaskDomain(ctx, api, mw); err != nil {
		return err
	}
	if err := srv.setupStudyDomains(ctx, api, mw); err != nil {
		return err
	}

	return nil
}
