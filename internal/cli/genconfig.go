package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/ctp/pkg/config"
	"github.com/arthur-debert/ctp/pkg/paths"
	"github.com/arthur-debert/ctp/pkg/ui/styles"
	"github.com/spf13/cobra"
)

func newGenConfigCmd() *cobra.Command {
	var (
		formatName string
		force      bool
		toStdout   bool
	)

	cmd := &cobra.Command{
		Use:   "genconfig [path]",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Example: `  ctp genconfig
  ctp genconfig ~/.ctp
  ctp genconfig --format yaml --stdout`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = paths.ExpandHome(args[0])
			}

			format := config.FormatTOML
			switch {
			case formatName != "":
				f, err := config.ParseFormat(formatName)
				if err != nil {
					return err
				}
				format = f
			case path != "":
				format = config.FormatForPath(path)
			}

			if toStdout {
				content, err := config.Generate(config.Starter(), format)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(content)
				return err
			}

			if path == "" {
				path = paths.XDGConfigPath()
				if format == config.FormatYAML {
					path = strings.TrimSuffix(path, filepath.Ext(path)) + ".yaml"
				}
			}

			if err := config.WriteStarter(path, format, force); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, styles.Render("FilePath", path))
			return nil
		},
	}

	cmd.Flags().StringVar(&formatName, "format", "", MsgFlagFormat)
	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	cmd.Flags().BoolVar(&toStdout, "stdout", false, MsgFlagStdout)

	return cmd
}
