// Package app 负责应用状态的创建与销毁：配置、日志、数据库连接与服务集合。
package app

import (
	"fmt"
	"time"

	"github.com/lifelog/internal/config"
	"github.com/lifelog/internal/db"
	"github.com/lifelog/internal/log"
	"github.com/lifelog/internal/service"
	"gorm.io/gorm"
)

// App 持有一次运行所需的全部状态
type App struct {
	Config   config.AppConfig
	Logger   *log.Logger
	DB       *gorm.DB
	Services *service.Services
}

// Open 校验配置、打开数据库、播种所有者账号并构造服务
func Open(cfg config.AppConfig, logger *log.Logger) (*App, error) {
	if logger == nil {
		logger = log.Discard()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	location, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("load timezone: %w", err)
	}

	gdb, err := db.Open(cfg.DatabasePath, db.Options{Silent: true})
	if err != nil {
		return nil, err
	}
	if err := db.EnsureOwner(gdb, cfg.OwnerName, cfg.OwnerPassword); err != nil {
		_ = db.Close(gdb)
		return nil, fmt.Errorf("seed owner: %w", err)
	}

	clock := func() time.Time { return time.Now().In(location) }
	services := service.NewServices(gdb, logger, service.WithClock(clock))

	logger.Info("application ready",
		log.FieldOperation, log.OpStartup,
		"database", cfg.DatabasePath,
		"timezone", location.String(),
	)
	return &App{
		Config:   cfg,
		Logger:   logger,
		DB:       gdb,
		Services: services,
	}, nil
}

// Close 释放数据库连接
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	return db.Close(a.DB)
}
