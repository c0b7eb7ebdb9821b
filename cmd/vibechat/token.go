package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/artem13815/workvibe/pkg/config"
	"github.com/artem13815/workvibe/pkg/security/jwt"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Выпустить сервисный токен для загрузки карточек",
	Long:  "Подписывает JWT секретом CARDS_JWT_SECRET. Токен нужен для POST /api/conversation/{id}/cards.",
	RunE:  runToken,
}

var tokenSubject string

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "cards-pipeline", "Token subject")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	gen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	token, err := gen.Generate(tokenSubject, jwt.ScopeCardsWrite)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
