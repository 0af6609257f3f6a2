package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ats/internal/auth"
	intconfig "ats/internal/config"
	intdb "ats/internal/db"
	router "ats/internal/http"
	"ats/internal/http/handlers"
	"ats/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	env, err := intconfig.LoadEnv(".", "./config")
	if err != nil {
		utils.Log.WithError(err).Fatal("invalid configuration")
	}
	utils.SetupLogger(env.LogLevel, env.LogJSON)
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}
	if env.JWTSecret == intconfig.DevJWTSecret {
		utils.Log.Warn("JWT_SECRET is not set, using the development secret")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := intconfig.ConnectDB(ctx, env)
	cancel()
	if err != nil {
		utils.Log.WithError(err).Fatal("database connection failed")
	}
	defer db.Close()

	tokens, err := auth.NewManager(auth.Config{
		Secret:     []byte(env.JWTSecret),
		AccessTTL:  env.AccessTTL,
		RefreshTTL: env.RefreshTTL,
	})
	if err != nil {
		utils.Log.WithError(err).Fatal("token manager setup failed")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewDBStatsCollector(db, env.DBDriver))

	h := handlers.New(db, intdb.ForDriver(env.DBDriver), tokens)
	r := router.NewRouter(env, h, reg)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		utils.Log.WithField("addr", env.AppAddr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	utils.Log.Info("shutting down")

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		utils.Log.WithError(err).Fatal("graceful shutdown failed")
	}

	utils.Log.Info("server stopped")
}
