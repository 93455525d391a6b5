package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pizza-order/config"
	httpapi "pizza-order/order-svc/internal/api/http"
	"pizza-order/order-svc/internal/service"

	"github.com/sirupsen/logrus"
)

func main() {
	log := newLogger()
	cfg := config.Load(log)
	log.SetLevel(cfg.LogLevel)

	// Closing the window or a confirmed Quit both end with exit code 0.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Error("Pizza order form failed")
		os.Exit(1)
	}
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	return log
}

// run serves the form until ctx ends or the user confirms Quit.
func run(ctx context.Context, cfg config.Config, log logrus.FieldLogger) error {
	ctx, quit := context.WithCancel(ctx)
	defer quit()

	form := service.NewFormService(service.OrderCalculator{}, quit)
	handler := httpapi.NewHandler(form, service.DefaultQRGenerator{Size: cfg.QRSize}, log)

	log.WithFields(logrus.Fields{
		"addr":     cfg.Addr,
		"qr_size":  cfg.QRSize,
		"shutdown": cfg.ShutdownTimeout.String(),
	}).Info("Configuration loaded")

	return httpapi.StartServer(ctx, cfg.Addr, httpapi.NewRouter(handler), cfg.ShutdownTimeout, log)
}
