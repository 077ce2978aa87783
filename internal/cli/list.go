package cli

import (
	"fmt"

	"github.com/arthur-debert/ctp/pkg/config"
	"github.com/arthur-debert/ctp/pkg/options"
	"github.com/arthur-debert/ctp/pkg/ui/styles"
	"github.com/spf13/cobra"
)

func newListCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := options.ConfigPath(*configPath)
			if err != nil {
				return err
			}
			doc, err := config.Load(path)
			if err != nil {
				return err
			}

			languages, err := doc.Languages()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(languages) == 0 {
				_, _ = fmt.Fprintln(out, styles.Render("Muted", MsgNoLanguages))
				return nil
			}

			width := 0
			for _, lang := range languages {
				if len(lang) > width {
					width = len(lang)
				}
			}

			for _, lang := range languages {
				location, err := doc.TemplateLocation(lang)
				if err != nil {
					return err
				}
				counts := make(map[config.Variant]int, 2)
				for _, variant := range config.Variants() {
					commands, _, err := doc.Commands(lang, variant)
					if err != nil {
						return err
					}
					counts[variant] = len(commands)
				}
				_, _ = fmt.Fprintf(out, MsgLanguageItem,
					styles.Render("Language", fmt.Sprintf("%-*s", width, lang)),
					styles.Render("FilePath", location),
					counts[config.Before], counts[config.After])
			}
			return nil
		},
	}
}
