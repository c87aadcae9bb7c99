package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/segmentio/ksuid"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"storewatch/docs"
	"storewatch/internal/auth"
	"storewatch/internal/config"
	"storewatch/internal/handler"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth      *handler.AuthHandler
	Store     *handler.StoreHandler
	Dashboard *handler.DashboardHandler
	Report    *handler.ReportHandler
	Settings  *handler.SettingsHandler
	Import    *handler.ImportHandler
	Page      *handler.PageHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log *zap.Logger,
	sessions *auth.SessionStore,
	revocations auth.RevocationStoreInterface,
	h Handlers,
) {
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return ksuid.New().String() },
	}))
	e.Use(requestLogger(log))
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Guarded pages
	guard := auth.Guard(sessions)
	for _, prefix := range []string{auth.AdminPrefix, auth.DashboardPrefix} {
		e.GET(prefix, h.Page.Page, guard)
		e.GET(prefix+"/*", h.Page.Page, guard)
	}

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signin", h.Auth.SignIn)
	api.POST("/auth/signout", h.Auth.SignOut)
	api.GET("/auth/session", h.Auth.Session)

	// Secured routes (require a session cookie)
	secured := api.Group("", auth.RequireSession(sessions.Codec(), revocations))
	adminOnly := auth.RequireAdmin()

	secured.GET("/stores", h.Store.ListStores)
	secured.POST("/stores", h.Store.CreateStore, adminOnly)
	secured.GET("/centers", h.Store.ListCenters)
	secured.POST("/centers", h.Store.CreateCenter, adminOnly)

	secured.GET("/stores/:storeID/dashboard", h.Dashboard.GetDashboard)

	secured.GET("/stores/:storeID/reports/customer", h.Report.CustomerReport)
	secured.GET("/stores/:storeID/reports/employee", h.Report.EmployeeReport)
	secured.GET("/stores/:storeID/reports/export.xlsx", h.Report.ExportReport)
	secured.GET("/reports/time-log", h.Report.TimeLog)

	secured.GET("/stores/:storeID/settings", h.Settings.GetSettings)
	secured.PUT("/stores/:storeID/settings", h.Settings.UpdateSettings, adminOnly)

	secured.POST("/import", h.Import.ImportWorkbook, adminOnly)
}

// requestLogger writes one structured line per request.
func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				log.Warn("request failed", append(fields, zap.Error(v.Error))...)
				return nil
			}
			log.Info("request", fields...)
			return nil
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
