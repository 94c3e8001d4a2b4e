package main

import (
	"context"
	"os"
	"smartnotes/cmd/internal/config"
	"smartnotes/cmd/internal/domain/policy"
	"smartnotes/cmd/internal/domain/sqlite"
	"smartnotes/cmd/internal/domain/sqlite/repository"
	"smartnotes/cmd/internal/http/handler"
	mw "smartnotes/cmd/internal/http/middleware"
	cognitoclient "smartnotes/cmd/internal/infrastructure/aws/cognito"
	"smartnotes/cmd/internal/infrastructure/textgen"
	"smartnotes/cmd/internal/service"
	"smartnotes/cmd/internal/utils"
	"smartnotes/cmd/internal/utils/uid"
	"smartnotes/cmd/internal/utils/validators"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultAddr = ":7070"

func main() {
	validate := validator.New()
	validators.Register(validate)

	// Loads env vars depending on environment
	if err := config.LoadEnv(context.Background()); err != nil {
		log.Fatalf("failed to load environment: %v", err)
	}

	uid.Init(machineID())
	limits := config.LoadSearch()

	// Init SQLite
	db, err := sqlite.Init()
	if err != nil {
		panic(err)
	}

	if err = utils.InitJWKS(os.Getenv("AWS_COGNITO_REGION"), os.Getenv("AWS_COGNITO_USER_POOL_ID")); err != nil {
		panic(err)
	}

	// Init cognito client
	cogClient, err := cognitoclient.InitCognitoClient()
	if err != nil {
		panic(err)
	}

	var generator textgen.Generator
	generator, err = textgen.NewClientFromEnv()
	if err != nil {
		log.Warnf("summaries and tag generation disabled: %v", err)
		generator = textgen.Unconfigured{}
	}

	// Gettings repos
	noteRepo := repository.NewNoteRepository(db)
	tagRepo := repository.NewTagRepository(db)
	summaryRepo := repository.NewSummaryRepository(db)
	userRepo := repository.NewUserRepository(db)

	notePolicy := policy.NewNotePolicy()

	// Getting services
	userService := service.NewUserService(userRepo, validate, cogClient, notePolicy)
	noteService := service.NewNoteService(noteRepo, tagRepo, notePolicy, validate, limits)
	generationService := service.NewGenerationService(noteRepo, tagRepo, summaryRepo, notePolicy, generator)
	searchService := service.NewSearchService(noteRepo, notePolicy, limits)
	suggestionService := service.NewSuggestionService(noteRepo, tagRepo, notePolicy, limits)
	tagService := service.NewTagService(tagRepo, notePolicy)

	// Gettings handler
	noteRoutes := handler.NewNoteDefault(noteService, generationService)
	userRoutes := handler.NewUserDefault(userService)
	searchRoutes := handler.NewSearchDefault(searchService)
	suggestionRoutes := handler.NewSuggestionDefault(suggestionService)
	tagRoutes := handler.NewTagDefault(tagService)

	e := echo.New()
	e.HideBanner = true
	e.Use(mw.NewMetricsMiddleware())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("2M"))

	auth := mw.NewAuthMiddleware(&mw.AuthMiddlewareConfig{UserRepo: userRepo})

	// Users
	e.POST("/api/users/check-email", userRoutes.CheckEmail)
	e.POST("/api/users", userRoutes.CreateUser)
	e.POST("/api/users/login", userRoutes.CreateLogin)
	e.POST("/api/users/confirms", userRoutes.ConfirmSignup)
	e.POST("/api/users/confirms/resend", userRoutes.ResendConfirmation)

	api := e.Group("/api", auth)
	api.GET("/users/@me", userRoutes.GetMe)

	// Notes
	api.GET("/notes", noteRoutes.GetNotes)
	api.GET("/notes/trash", noteRoutes.GetTrash)
	api.GET("/notes/:id", noteRoutes.GetNote)
	api.POST("/notes", noteRoutes.CreateNote)
	api.PATCH("/notes/:id", noteRoutes.UpdateNote)
	api.DELETE("/notes/:id", noteRoutes.DeleteNote)
	api.POST("/notes/:id/restore", noteRoutes.RestoreNote)
	api.GET("/notes/:id/tags", noteRoutes.GetNoteTags)
	api.POST("/notes/:id/tags", noteRoutes.GenerateTags)
	api.GET("/notes/:id/summaries", noteRoutes.GetSummaries)
	api.POST("/notes/:id/summaries", noteRoutes.GenerateSummary)

	// Search
	api.GET("/search", searchRoutes.SearchByText)
	api.GET("/search/tags", searchRoutes.FilterByTags)
	api.GET("/search/dates", searchRoutes.FilterByDateRange)

	// Suggestions
	api.GET("/suggestions", suggestionRoutes.Suggest)
	api.GET("/suggestions/completions", suggestionRoutes.Completions)

	// Tags
	api.GET("/tags", tagRoutes.GetTags)
	api.GET("/tags/stats", tagRoutes.GetTagStats)
	api.GET("/tags/popular", suggestionRoutes.PopularTags)
	api.DELETE("/tags/:id", noteRoutes.DeleteTag)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = defaultAddr
	}

	if err := e.Start(addr); err != nil {
		panic(err)
	}
}

func machineID() int64 {
	raw := os.Getenv("MACHINE_ID")
	if raw == "" {
		return uid.DefaultMachineID
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("invalid MACHINE_ID %q: %v", raw, err)
	}
	return id
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
