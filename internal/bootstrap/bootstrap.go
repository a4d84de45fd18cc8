package bootstrap

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/studentinfo/internal/app/controllers"
	appRepos "github.com/yigit/studentinfo/internal/app/repositories"
	appRoutes "github.com/yigit/studentinfo/internal/app/routes"
	appServices "github.com/yigit/studentinfo/internal/app/services"
	"github.com/yigit/studentinfo/internal/config"
	appMiddleware "github.com/yigit/studentinfo/internal/middleware"
	"github.com/yigit/studentinfo/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService    *appServices.StudentService
	StudentController *appControllers.StudentController
	Repos             *appRepos.Repositories
	Logger            zerolog.Logger
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
	prettyLog := strings.ToLower(cfg.Logging.Format) == "console"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore initializes the repositories over the collection file and
// makes sure the file exists. A failure to create it is logged but does
// not stop startup: the store fails open and every read yields an empty
// collection until the path becomes writable.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) *appRepos.Repositories {
	repos := appRepos.NewRepositories(cfg.Store.Path)

	if err := repos.StudentRepository.EnsureFile(context.Background()); err != nil {
		lgr.Warn().Err(err).Str("path", cfg.Store.Path).Msg("Could not create student collection file, continuing without it")
	} else {
		lgr.Info().Str("path", cfg.Store.Path).Msg("Student collection file ready")
	}

	return repos
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(repos *appRepos.Repositories, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr, Repos: repos}

	deps.StudentService = appServices.NewStudentService(repos.StudentRepository)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.RegisterValidatorTagNames()

	router := gin.Default()
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.CORS())
	router.Use(appMiddleware.Metrics())

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router, deps.StudentController)

	// Setup Swagger
	appRoutes.SetupSwagger(router)

	return router
}
