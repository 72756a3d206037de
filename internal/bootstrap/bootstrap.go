package bootstrap

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/habtamu/memberdesk/internal/app/controllers"
	appRoutes "github.com/habtamu/memberdesk/internal/app/routes"
	"github.com/habtamu/memberdesk/internal/config"
	appMiddleware "github.com/habtamu/memberdesk/internal/middleware"
	pkgAuth "github.com/habtamu/memberdesk/internal/pkg/auth"
	"github.com/habtamu/memberdesk/internal/pkg/logger"
	"github.com/habtamu/memberdesk/internal/pkg/validation"
	"github.com/habtamu/memberdesk/internal/session"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Sessions            *session.Manager
	Cookies             *pkgAuth.CookieService
	Guard               *appMiddleware.Guard
	LandingController   *appControllers.LandingController
	AuthController      *appControllers.AuthController
	DashboardController *appControllers.DashboardController
	UsersController     *appControllers.UsersController
	AdminsController    *appControllers.AdminsController
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes the session manager, guard, and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Sessions = session.NewManager(cfg.Upstream.BaseURL, cfg.UpstreamTimeout(), cfg.SessionTTL())

	deps.Cookies = pkgAuth.NewCookieService(pkgAuth.CookieConfig{
		Secret: cfg.Session.Secret,
		TTL:    cfg.SessionTTL(),
		Issuer: "memberdesk",
	})

	deps.Guard = appMiddleware.NewGuard(deps.Sessions, deps.Cookies, cfg.Session.CookieName)

	deps.LandingController = appControllers.NewLandingController()
	deps.AuthController = appControllers.NewAuthController(
		deps.Sessions,
		deps.Cookies,
		cfg.Session.CookieName,
		cfg.IsProduction(),
	)
	deps.DashboardController = appControllers.NewDashboardController()
	deps.UsersController = appControllers.NewUsersController()
	deps.AdminsController = appControllers.NewAdminsController()

	lgr.Info().Str("upstream", cfg.Upstream.BaseURL).Msg("Dependencies initialized")
	return deps, nil
}

// SetupRouter configures the Gin engine with middleware, templates, and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validation.RegisterRules(v); err != nil {
			return nil, fmt.Errorf("failed to register validation rules: %w", err)
		}
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	router.LoadHTMLGlob(filepath.Join("web", "templates", "*.html"))
	router.Static("/static", filepath.Join("web", "static"))

	appRoutes.SetupRouter(router,
		deps.LandingController,
		deps.AuthController,
		deps.DashboardController,
		deps.UsersController,
		deps.AdminsController,
		deps.Guard,
	)

	return router, nil
}
