package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/artem13815/workvibe/pkg/chatapi"
	"github.com/artem13815/workvibe/pkg/session"
	"github.com/artem13815/workvibe/pkg/settings"
	"github.com/artem13815/workvibe/pkg/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Открыть чат с каруселью карточек",
	RunE:  runChat,
}

var (
	chatSettingsPath string
	chatResetOverlay bool
)

func init() {
	chatCmd.Flags().StringVar(&chatSettingsPath, "settings", "", "Path to settings.yaml (default: user config dir)")
	chatCmd.Flags().BoolVar(&chatResetOverlay, "intro", false, "Show the intro overlay again")
	rootCmd.AddCommand(chatCmd)
}

func runChat(_ *cobra.Command, _ []string) error {
	cfg, err := clientConfig()
	if err != nil {
		return err
	}
	// Логи в stderr ломают экран TUI, поэтому здесь всегда Nop.
	path := chatSettingsPath
	if path == "" {
		if path, err = settings.DefaultPath(); err != nil {
			return fmt.Errorf("settings path: %w", err)
		}
	}
	st, err := settings.Load(path)
	if err != nil {
		return err
	}
	if chatResetOverlay {
		st.OverlayDismissed = false
	}

	sess := session.New(chatapi.New(cfg.APIURL), nil, nil)
	model := tui.New(sess, tui.Options{
		Settings: st,
		Save:     func(s settings.Settings) error { return settings.Save(path, s) },
	})
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
