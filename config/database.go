package config

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

type DatabaseConfig struct {
	Driver       string `yaml:"driver"`
	DSN          string `yaml:"dsn"`
	Server       string `yaml:"server"`
	Database     string `yaml:"database"`
	User         string `yaml:"user"`
	Password     string `yaml:"password"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

func NewDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Driver:       "sqlite",
		DSN:          "file:contacts.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		Database:     "contacts",
		MaxOpenConns: 25,
		MaxIdleConns: 5,
	}
}

// GetDSN returns DSN when set. For mysql without a DSN one is built from
// the server, database and credentials.
func (c *DatabaseConfig) GetDSN() string {
	if c.DSN != "" || c.Driver != "mysql" {
		return c.DSN
	}
	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = c.Server
	mc.DBName = c.Database
	mc.ParseTime = true
	return mc.FormatDSN()
}

func ConnectDatabase(ctx context.Context, cfg DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open(cfg.Driver, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if cfg.Driver == "sqlite" {
		// one writer at a time; also keeps :memory: databases on a single connection
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	return db, nil
}
