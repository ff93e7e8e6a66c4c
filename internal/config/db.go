package config

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// OpenDB connects to MySQL and verifies the connection. The handle is owned
// by the caller and passed down explicitly; nothing in this package keeps a
// reference to it.
func OpenDB(env Env) (*sql.DB, error) {
	auth := env.DBUser
	if env.DBPass != "" {
		auth = fmt.Sprintf("%s:%s", env.DBUser, env.DBPass)
	}
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?parseTime=true&loc=UTC&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s",
		auth, env.DBHost, env.DBPort, env.DBName)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
