package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"apptransaction/config"
	"apptransaction/controllers"
	"apptransaction/db"
	"apptransaction/logging"
	"apptransaction/router"
	"apptransaction/services"
	"apptransaction/workers"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// =====================
// ENV
// =====================
//
// - CONFIG_PATH     (default config.json; values below override it)
// - PORT            (default 8080)
// - API_PREFIX      (default empty, e.g. /api/v1)
// - LOG_DIR         (default logs)
// - DATABASE        (sqlite3 | memory | postgres)
// - DB_PATH, DB_HOST, DB_PORT, DB_USER, DB_NAME, DB_PASS
// - AUTH_USERNAME, AUTH_PASSWORD  (basic auth of GET /)
//
// =====================

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg := config.Get(getenv("CONFIG_PATH", "config.json"))

	logs := logging.Open(cfg.LogDir, "customer", "plan", "transaction", "api")

	database, err := db.Connect(cfg)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	if cfg.Migrate() {
		if err := db.Migrate(database); err != nil {
			log.WithError(err).Fatal("database migration failed")
		}
	}

	ctl := controllers.New(services.New(logs), logs)

	r := gin.New()
	router.Initialize(r, cfg, database, ctl, log.StandardLogger())

	srv := &http.Server{
		Addr:              ":" + cfg.ApiPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flusherDone := workers.StartLogFlusher(ctx, logs, 5*time.Second)

	go func() {
		log.Infof("listening on :%s", cfg.ApiPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
	stop()
	<-flusherDone

	if err := database.Close(); err != nil {
		log.WithError(err).Error("closing database")
	}
	if err := logs.Sync(); err != nil {
		log.WithError(err).Warn("flushing logs")
	}
	if err := logs.Close(); err != nil {
		log.WithError(err).Warn("closing logs")
	}
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
