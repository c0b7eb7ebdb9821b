package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artem13815/workvibe/pkg/chatapi"
	"github.com/artem13815/workvibe/pkg/session"
	"github.com/artem13815/workvibe/pkg/settings"
	"github.com/artem13815/workvibe/pkg/tui"
)

var sendCmd = &cobra.Command{
	Use:   "send <message>",
	Short: "Отправить одно сообщение и напечатать ответ и карточки",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSend,
}

const printWidth = 80

func init() {
	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
	cfg, err := clientConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	defer log.Sync()

	sess := session.New(chatapi.New(cfg.APIURL), nil, log)
	turn, sendErr := sess.Send(cmd.Context(), strings.Join(args, " "))
	if errors.Is(sendErr, session.ErrEmptyMessage) {
		return sendErr
	}

	st := sess.Snapshot()
	styles := tui.NewStyles(settings.ThemeDark)
	out := cmd.OutOrStdout()
	// Приветствие пропускаем.
	fmt.Fprintln(out, tui.RenderTranscript(st.Transcript[1:], printWidth, styles))
	if sendErr != nil {
		return sendErr
	}
	log.Debug("turn finished", "source", turn.Source, "conversation_id", st.ConversationID)
	if st.Payload == nil {
		return nil
	}
	for _, c := range st.Cards {
		fmt.Fprintln(out)
		fmt.Fprintln(out, tui.RenderCard(c, printWidth, styles))
	}
	return nil
}
