package server

import (
	"log"

	"medichat-be/internal/bootstrap"
	"medichat-be/internal/config"
	"medichat-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB, bounds photo uploads
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.App.CorsAllowedOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Content-Type, Authorization",
	}))

	if cfg.App.TracingEnabled {
		app.Use(otelfiber.Middleware())
	}

	// Audit wraps the error handler so failed requests are recorded with
	// their translated status codes.
	app.Use(serverutils.NewAuditMiddleware(container.UowFactory, container.Logger))
	app.Use(serverutils.ErrorHandlerMiddleware())

	registerRoutes(app, cfg, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

// registerRoutes is the single explicit route table; every path the
// service answers is visible here.
func registerRoutes(app *fiber.App, cfg *config.Config, c *bootstrap.Container) {
	jwtMiddleware := serverutils.NewJwtMiddleware(cfg.JWT.Secret)

	c.HealthController.RegisterRoutes(app)
	c.AuthController.RegisterRoutes(app, jwtMiddleware)
	c.UserController.RegisterRoutes(app, jwtMiddleware)
	c.ChatController.RegisterRoutes(app, jwtMiddleware)
}
