package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-menu/internal/config"
	"github.com/iliyamo/restaurant-menu/internal/database"
	"github.com/iliyamo/restaurant-menu/internal/handler"
	"github.com/iliyamo/restaurant-menu/internal/queue"
	"github.com/iliyamo/restaurant-menu/internal/repository"
	"github.com/iliyamo/restaurant-menu/internal/router"
	"github.com/iliyamo/restaurant-menu/internal/utils"
)

func main() {
	// Load .env if present; real environment variables win.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	// Schema creation and seeding are idempotent and run on every start.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.InitSchema(ctx, db); err != nil {
		log.Fatalf("init schema: %v", err)
	}
	hash := func(plain string) (string, error) {
		return utils.HashPassword(plain, cfg.BcryptCost)
	}
	if err := database.SeedDefaults(ctx, db, hash); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}

	users := repository.NewUserRepo(db)
	items := repository.NewItemRepo(db)
	cats := repository.NewCategoryRepo(db)

	authHandler := handler.NewAuthHandler(cfg, users)
	catalogHandler := handler.NewCatalogHandler(items, cats, queue.NewPublisher())

	// Optional Redis for the login rate limiter; nil disables it.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Print("redis unavailable, login rate limiting disabled")
	}

	e := echo.New()
	router.Register(e, cfg, authHandler, catalogHandler, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, db=%s)", addr, cfg.Env, cfg.DBPath)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
