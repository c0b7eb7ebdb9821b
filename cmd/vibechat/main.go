// Package main — терминальный клиент workvibe: чат с заглушкой бэкенда и карусель карточек профессии.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/artem13815/workvibe/pkg/config"
	"github.com/artem13815/workvibe/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:           "vibechat",
	Short:         "Почувствуй рабочий день профессии",
	Long:          "vibechat общается с бэкендом workvibe и собирает карточки профессии: расписание дня, карту развития, сообщения коллег и перспективы.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	apiURL string
	debug  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "Base URL of the backend (overrides VIBE_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log to stderr")
}

// clientConfig loads env settings and applies flag overrides.
func clientConfig() (config.ClientConfig, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return cfg, err
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}
	return cfg, nil
}

func newLogger(cfg config.ClientConfig) *logger.Logger {
	if !debug {
		return logger.Nop()
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return logger.Nop()
	}
	return log
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
