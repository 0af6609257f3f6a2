package config

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"ats/internal/utils"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// ConnectDB opens the pool for env.DBDriver and checks it answers.
func ConnectDB(ctx context.Context, env Env) (*sql.DB, error) {
	db, err := sql.Open(env.DBDriver, env.DBDSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", env.DBDriver, err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", env.DBDriver, err)
	}

	utils.LogEvent("", "db", "connect", "connected to "+env.DBDriver)
	return db, nil
}
