package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/app"
	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/config"
	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/handler"
	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/hopapi"
	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/notify"
	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/service"
	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/session"
	"github.com/Stranger-app-team/stranger-vendor-dashboard/pkg/cache"

	"github.com/joho/godotenv"
)

// @title           Vendor Dashboard API
// @version         1.0
// @description     HTTP API of the vendor order management dashboard
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	sess := session.New(conf.Session.StorePath)
	panicIfErr("failed to load session", sess.Load())

	client := hopapi.New(conf.Upstream.BaseURL, &http.Client{Timeout: conf.Upstream.Timeout}, sess)
	catalogCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	catalogService := service.NewCatalogService(logger, client, catalogCache)
	editorService := service.NewEditorService(logger, client, catalogService)
	orderService := service.NewOrderService(logger, client, client, catalogService)
	authService := service.NewAuthService(logger, client, sess)
	analyticsService := service.NewAnalyticsService(logger, client)

	poller := notify.New(logger, client, sess, conf.Notify.Interval)

	handler.RegisterMetrics()
	httpHandler := handler.NewHTTPHandler(
		logger, editorService, orderService, catalogService,
		authService, analyticsService, poller, sess,
	)

	app := app.New(logger, conf)
	app.SetHTTPHandlers(httpHandler)
	app.SetStarters(catalogCache, poller)
	app.SetStoppers(poller)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
