package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	_ "master_booking/docs"
	"master_booking/internal/adapter/http/routes"
	"master_booking/internal/config"
)

// @title           Master Booking API
// @version         1.0
// @description     Booking website backend: quotes, Stripe payments, coupons, Master Club memberships, leads and partner applications.

// @contact.name   Master
// @contact.url    https://wearemaster.com
// @contact.email  hello@wearemaster.com

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey InternalKey
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the INTERNAL_API_KEY.

func main() {
	cfg := config.MustLoad()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.Logger.Level)})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("[app][main] starting", "environment", cfg.Environment, "addr", cfg.Server.Addr)
	if err := routes.Run(ctx, cfg); err != nil {
		slog.Error("[app][main] stopped with error", "error", err)
		os.Exit(1)
	}
	slog.Info("[app][main] stopped")
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
