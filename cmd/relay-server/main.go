// cmd/relay-server/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"towncar-relay/internal/common/aws"
	"towncar-relay/internal/common/config"
	"towncar-relay/internal/common/logger"
	"towncar-relay/internal/common/observability"
	"towncar-relay/internal/relay"
	"towncar-relay/internal/server"
	"towncar-relay/internal/tenant"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info", "console")
		fallback.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting relay server",
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.Server.Port),
	)

	obs := observability.New("relay-server")
	defer obs.Shutdown()

	ctx := context.Background()

	snsClient, err := aws.NewSNSClient(ctx, cfg.Delivery.AWS.Region)
	if err != nil {
		zapLog.Fatal("sns client init failed", zap.Error(err))
	}
	smsSender := relay.NewSNSSender(snsClient, cfg.Delivery.SMS.SenderID)

	var emailSender relay.Sender
	if cfg.Delivery.Email.Enabled {
		sesClient, err := aws.NewSESClient(ctx, cfg.Delivery.AWS.Region)
		if err != nil {
			zapLog.Fatal("ses client init failed", zap.Error(err))
		}
		emailSender = relay.NewSESSender(sesClient, cfg.Delivery.Email.FromEmail)
	}

	if cfg.Delivery.SMS.FromNumber == "" {
		// Requests will be refused until the operator configures the
		// sender identity; keep the process up so /healthz answers.
		zapLog.Warn("delivery.sms.from_number is empty, submissions will be rejected")
	}

	registry := tenant.Builtin()
	dispatcher := relay.NewDispatcher(smsSender, emailSender, log)
	svc := relay.NewService(cfg, dispatcher, os.Getenv, log, obs)
	srv := server.New(cfg, registry, svc, log)

	go func() {
		if err := srv.Start(); err != nil {
			zapLog.Info("http server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
}
