package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gin-gonic/gin"
	"github.com/lifelog/internal/log"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr    string `toml:"listen_addr"`
	Port          string `toml:"port"`
	DatabasePath  string `toml:"database_path"`
	SessionSecret string `toml:"session_secret"`
	GinMode       string `toml:"gin_mode"`
	OwnerName     string `toml:"owner_name"`
	OwnerPassword string `toml:"owner_password"`
	Timezone      string `toml:"timezone"`
	LogLevel      string `toml:"log_level"`
	ConfigFile    string `toml:"-"`
}

// Default 返回未经任何覆盖的默认配置
func Default() AppConfig {
	return AppConfig{
		Port:          "8080",
		DatabasePath:  "lifelog.db",
		SessionSecret: "lifelog-dev-secret",
		GinMode:       gin.ReleaseMode,
		Timezone:      "Local",
		LogLevel:      "info",
		ConfigFile:    DefaultConfigPath(),
	}
}

// DefaultConfigPath 返回 XDG 规范下的配置文件路径
func DefaultConfigPath() string {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, "lifelog", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".lifelog", "config.toml")
	}
	return filepath.Join(home, ".config", "lifelog", "config.toml")
}

// Load 依次应用默认值、TOML 配置文件与环境变量。
// 配置文件不存在不算错误，内容无法解析则返回错误。
func Load() (AppConfig, error) {
	cfg := Default()
	if path := strings.TrimSpace(os.Getenv("LIFELOG_CONFIG")); path != "" {
		cfg.ConfigFile = path
	}

	if err := cfg.loadFile(); err != nil {
		return cfg, err
	}
	cfg.applyEnv()

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = fmt.Sprintf(":%s", cfg.Port)
	}
	return cfg, nil
}

func (c *AppConfig) loadFile() error {
	if c.ConfigFile == "" {
		return nil
	}
	data, err := os.ReadFile(c.ConfigFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", c.ConfigFile, err)
	}

	path := c.ConfigFile
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	c.ConfigFile = path
	return nil
}

func (c *AppConfig) applyEnv() {
	overrides := []struct {
		key    string
		target *string
	}{
		{"PORT", &c.Port},
		{"LISTEN_ADDR", &c.ListenAddr},
		{"DATABASE_PATH", &c.DatabasePath},
		{"SESSION_SECRET", &c.SessionSecret},
		{"GIN_MODE", &c.GinMode},
		{"OWNER_NAME", &c.OwnerName},
		{"OWNER_PASSWORD", &c.OwnerPassword},
		{"TIMEZONE", &c.Timezone},
		{"LOG_LEVEL", &c.LogLevel},
	}
	for _, o := range overrides {
		if value := strings.TrimSpace(os.Getenv(o.key)); value != "" {
			*o.target = value
		}
	}
}

// Validate 检查全部配置项，并把所有问题合并为一个错误返回
func (c AppConfig) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if strings.TrimSpace(c.DatabasePath) == "" {
		problems = append(problems, "database path cannot be empty")
	}

	switch c.GinMode {
	case gin.ReleaseMode, gin.DebugMode, gin.TestMode:
	default:
		problems = append(problems, fmt.Sprintf("invalid gin mode %q", c.GinMode))
	}

	if _, err := c.Location(); err != nil {
		problems = append(problems, fmt.Sprintf("invalid timezone %q: %v", c.Timezone, err))
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}

	if (c.OwnerName == "") != (c.OwnerPassword == "") {
		problems = append(problems, "owner name and password must be set together")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Location 解析 Timezone；空值与 Local 均表示本地时区
func (c AppConfig) Location() (*time.Location, error) {
	name := strings.TrimSpace(c.Timezone)
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
