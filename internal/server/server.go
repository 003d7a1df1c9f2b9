package server

import (
	"math/rand"
	"time"

	"backend-pathpal/internal/auth"
	"backend-pathpal/internal/config"
	"backend-pathpal/internal/location"
	"backend-pathpal/internal/route"
	"backend-pathpal/internal/session"
	"backend-pathpal/internal/social"
	"backend-pathpal/internal/stats"
	"backend-pathpal/internal/stream"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App    *fiber.App
	Cfg    config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Stream *stream.Hub
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:    app,
		Cfg:    cfg,
		DB:     db,
		Redis:  redisClient,
		Stream: stream.NewHub(redisClient),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)

	routeSvc := route.NewService(s.DB)
	statsSvc := stats.NewService(s.DB, s.Redis)
	gen := route.NewGenerator(rand.NewSource(time.Now().UnixNano()))
	sessions := session.NewManager(s.Stream, statsSvc)

	auth.RegisterRoutes(s.App.Group("/auth"), auth.NewService(s.Cfg.JWTSecret, s.DB))
	location.RegisterRoutes(s.App.Group("/location"), location.NewService(s.DB), jwtMiddleware)
	route.RegisterRoutes(s.App.Group("/routes"), routeSvc, gen, jwtMiddleware)
	session.RegisterRoutes(s.App.Group("/sessions"), sessions, routeSvc, jwtMiddleware)
	stats.RegisterRoutes(s.App.Group("/stats"), statsSvc, jwtMiddleware)
	social.RegisterRoutes(s.App.Group("/social"), social.NewService(s.DB), jwtMiddleware)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)
}
