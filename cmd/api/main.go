package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"shareit/internal/config"
	"shareit/internal/database"
	"shareit/internal/metrics"
	"shareit/internal/middleware"
	"shareit/internal/modules/booking"
	"shareit/internal/modules/item"
	"shareit/internal/modules/request"
	"shareit/internal/modules/user"
	"shareit/internal/pkg/clock"
	"shareit/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("load config")
	}

	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	requestRepo := repository.NewItemRequestRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	clk := clock.System()

	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	itemService := item.NewService(itemRepo, commentRepo, userRepo, requestRepo, bookingRepo, clk)
	itemHandler := item.NewHandler(itemService)

	requestService := request.NewService(requestRepo, userRepo, itemRepo, clk)
	requestHandler := request.NewHandler(requestService)

	bookingService := booking.NewService(bookingRepo, userRepo, itemRepo, clk)
	bookingHandler := booking.NewHandler(bookingService)

	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS())

	if cfg.Metrics.Enabled {
		metrics.Register()
		r.Use(middleware.Metrics())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	identity := middleware.Identity()

	root := r.Group("/")
	{
		userHandler.RegisterRoutes(root)
		itemHandler.RegisterRoutes(root, identity)
		requestHandler.RegisterRoutes(root, identity)
		bookingHandler.RegisterRoutes(root, identity)
	}

	log.Info().Str("addr", cfg.Addr()).Msg("starting server")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
