package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lifelog/internal/app"
	"github.com/lifelog/internal/config"
	"github.com/lifelog/internal/log"
	"github.com/spf13/cobra"
)

var (
	flagDatabase string
	flagLang     string
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:           "lifelog",
	Short:         "Personal life tracker",
	Long:          "Inspect habits, budget, journal, routines and skincare from the lifelog database.",
	RunE:          runStats,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute 是 main 的唯一入口
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lifelog: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDatabase, "db", "", "SQLite database path (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&flagLang, "lang", "l", "", "Output language (en or zh)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log storage activity to stderr")
}

// loadConfig 读取 .env、配置文件与环境变量，再应用命令行覆盖
func loadConfig() (config.AppConfig, error) {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if path := strings.TrimSpace(flagDatabase); path != "" {
		cfg.DatabasePath = path
	}
	return cfg, nil
}

// openApp 是所有读库命令共用的加载路径
func openApp() (*app.App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return app.Open(cfg, cliLogger())
}

func cliLogger() *log.Logger {
	if !flagVerbose {
		return log.Discard()
	}
	logConfig := log.DefaultConfig()
	logConfig.Output = os.Stderr
	logConfig.Component = log.ComponentCLI
	return log.New(logConfig)
}
