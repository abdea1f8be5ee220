package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	docs "github.com/kakeibo/backend/api"
	"github.com/kakeibo/backend/internal/config"
	"github.com/kakeibo/backend/pkg/controllers/healthz"
	"github.com/kakeibo/backend/pkg/controllers/root"
	v1 "github.com/kakeibo/backend/pkg/controllers/v1"
	"github.com/kakeibo/backend/pkg/controllers/version"
	"github.com/kakeibo/backend/pkg/httputil"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time with -ldflags.
var buildVersion = "0.0.0"

// Config sets up the router with all middlewares.
//
// The returned function unregisters the Prometheus metrics and must be
// called when the router is not used anymore.
func Config(cfg config.Config) (*gin.Engine, func(), error) {
	teardown := func() {}

	url, err := cfg.URL()
	if err != nil {
		return nil, teardown, err
	}

	err = registerPrometheusMetrics()
	if err != nil {
		return nil, teardown, err
	}
	teardown = func() { unregisterPrometheusMetrics() }

	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(url))
	r.Use(MetricsMiddleware())
	r.Use(v1.ParsersMiddleware(v1.Parsers{
		Live:   cfg.LiveParser(),
		Report: cfg.ReportParser(),
	}))
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httputil.HTTPError{
			Error: "This HTTP method is not allowed for the endpoint you called",
		})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httputil.HTTPError{
			Error: "There is no endpoint for the path you called",
		})
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	if len(cfg.CORSAllowOrigins) > 0 {
		log.Debug().Strs("allowOrigins", cfg.CORSAllowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			ExposeHeaders:    []string{"Content-Disposition"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", buildVersion).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "Kakeibo"
	docs.SwaggerInfo.Version = buildVersion
	docs.SwaggerInfo.Description = "The backend for a household budget book: monthly income, fixed expenses, spending categories and free text spending memos."

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in
// Separating this from Config() allows us to attach it to different
// paths for different use cases, e.g. the standalone version.
func AttachRoutes(cfg config.Config, group *gin.RouterGroup) {
	root.RegisterRoutes(group.Group(""))
	version.RegisterRoutes(group.Group("/version"), buildVersion)
	healthz.RegisterRoutes(group.Group("/healthz"))

	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	if cfg.EnablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1.RegisterRootRoutes(group.Group("/v1"))
	v1.RegisterMonthRoutes(group.Group("/v1/months"))
	v1.RegisterMemoRoutes(group.Group("/v1/memo"))
	v1.RegisterBackupRoutes(group.Group("/v1/backup"))
	v1.RegisterStatsRoutes(group.Group("/v1/stats"))
}
