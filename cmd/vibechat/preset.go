package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artem13815/workvibe/pkg/cards"
	"github.com/artem13815/workvibe/pkg/preset"
	"github.com/artem13815/workvibe/pkg/settings"
	"github.com/artem13815/workvibe/pkg/summary"
	"github.com/artem13815/workvibe/pkg/tui"
)

var presetCmd = &cobra.Command{
	Use:   "preset [name]",
	Short: "Показать карточки и сводку встроенного пресета",
	Long:  "Ищет пресет по id или по названию профессии. Без аргументов печатает список id.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runPreset,
}

var presetJSON bool

func init() {
	presetCmd.Flags().BoolVar(&presetJSON, "json", false, "Print the raw payload as JSON")
	rootCmd.AddCommand(presetCmd)
}

func runPreset(cmd *cobra.Command, args []string) error {
	catalog := preset.Default()
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		for _, id := range catalog.IDs() {
			fmt.Fprintln(out, id)
		}
		return nil
	}

	p, err := catalog.Find(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if presetJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}

	styles := tui.NewStyles(settings.ThemeDark)
	for _, c := range cards.Build(p) {
		fmt.Fprintln(out, tui.RenderCard(c, printWidth, styles))
		fmt.Fprintln(out)
	}
	if s, ok := summary.Build(p); ok {
		fmt.Fprintln(out, tui.RenderSummary(s, printWidth, styles))
	}
	return nil
}
