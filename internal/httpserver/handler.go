package httpserver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"workspace-admin/internal/middleware"
	"workspace-admin/internal/model"
	"workspace-admin/internal/view"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	tmpl, err := view.Templates()
	if err != nil {
		return fmt.Errorf("failed to parse page templates: %w", err)
	}
	srv.gin.SetHTMLTemplate(tmpl)

	mw := middleware.New(srv.l, srv.sessions, srv.cookie, srv.login)
	return srv.registerDomainRoutes(mw)
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	if srv.mode != gin.ReleaseMode {
		srv.gin.Use(gin.Logger())
	}

	ctx := context.Background()
	if srv.traceService != "" {
		srv.gin.Use(otelgin.Middleware(srv.traceService))
		srv.l.Infof(ctx, "Tracing enabled for %s", srv.traceService)
	}

	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Running in production mode")
	} else {
		srv.l.Infof(ctx, "Running in %s mode", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	srv.gin.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, middleware.DashboardPath)
	})
}
