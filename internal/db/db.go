package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultPath 为未配置数据库路径时使用的文件
const DefaultPath = "lifelog.db"

// Options 调整数据库连接行为
type Options struct {
	// Silent 关闭 gorm 的 SQL 日志
	Silent bool
}

// Open 打开数据库连接并执行自动迁移。
// path 为空时将回退到默认值 lifelog.db。调用方负责在结束时关闭连接。
func Open(path string, opts Options) (*gorm.DB, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = DefaultPath
	}

	if !isMemory(trimmed) {
		if err := ensureParentDir(trimmed); err != nil {
			return nil, err
		}
	}

	config := &gorm.Config{}
	if opts.Silent {
		config.Logger = logger.Default.LogMode(logger.Silent)
	}

	gdb, err := gorm.Open(sqlite.Open(trimmed), config)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", trimmed, err)
	}

	if err := Migrate(gdb); err != nil {
		Close(gdb)
		return nil, err
	}
	return gdb, nil
}

// Migrate 为全部模型建表
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&Bucket{}, &Owner{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}

// Close 关闭底层连接
func Close(gdb *gorm.DB) error {
	if gdb == nil {
		return nil
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func isMemory(path string) bool {
	return path == ":memory:" || strings.Contains(path, "mode=memory")
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
