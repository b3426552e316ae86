package main // Entry point package

import (
    "log" // Logging library

    "github.com/joho/godotenv"    // Loads .env files into the environment
    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/booking"    // Availability engine
    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/config"     // Internal config loader
    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/database"   // MySQL connection pool
    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/handler"    // HTTP handlers
    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/middleware" // Rate limiting middleware
    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/queue"      // Background event consumer
    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/repository" // DB repositories
    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/router"     // Route registration
)

func main() {
    _ = godotenv.Load() // Load .env when present; real env vars win

    cfg := config.Load() // Load environment config

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName) // Open MySQL pool
    if err != nil {
        log.Fatalf("database: %v", err) // Abort when the store is unreachable
    }
    defer db.Close()

    // Repositories share the single pool.
    users := repository.NewUserRepo(db)
    tokens := repository.NewTokenRepo(db)
    restaurants := repository.NewRestaurantRepo(db)
    reservations := repository.NewReservationRepo(db)

    // The engine reads restaurants and active reservations through narrow
    // capabilities so occupancy is always recomputed from live data.
    engine := booking.NewEngine(restaurants, reservations)

    authH := handler.NewAuthHandler(cfg, users, tokens)
    publicH := &handler.PublicHandler{RestaurantRepo: restaurants, Engine: engine}
    customerH := handler.NewCustomerHandler(restaurants, reservations, engine, cfg.BookingAttempts)
    ownerH := handler.NewOwnerHandler(restaurants, reservations)
    ownerResH := handler.NewOwnerReservationHandler(restaurants, reservations, engine, cfg.BookingAttempts)

    // Redis-backed token bucket for the availability and booking routes.
    var limiter echo.MiddlewareFunc
    rlCfg := config.LoadRateLimitConfig()
    if rlCfg.Enabled {
        rdb := config.NewRedisClient()
        if rdb != nil {
            limiter = middleware.NewTokenBucket(rlCfg, rdb)
        }
    }

    // Background consumer appends booked reservations to logs/reservation.log.
    go func() {
        if err := queue.StartReservationConsumer(); err != nil {
            log.Printf("reservation consumer stopped: %v", err)
        }
    }()

    e := echo.New() // Create Echo instance
    router.RegisterRoutes(e)
    router.RegisterAuth(e, authH, cfg.JWTSecret)
    router.RegisterPublic(e, publicH, limiter)
    router.RegisterCustomer(e, customerH, cfg.JWTSecret, limiter)
    router.RegisterOwner(e, ownerH, cfg.JWTSecret)
    router.RegisterOwnerReservations(e, ownerResH, cfg.JWTSecret)

    addr := ":" + cfg.Port                                // Address string with port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

    if err := e.Start(addr); err != nil { // Start HTTP server
        log.Fatal(err) // Log and exit if server fails
    }
}
