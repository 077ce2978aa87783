package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/arthur-debert/ctp/internal/version"
	"github.com/arthur-debert/ctp/pkg/config"
	"github.com/arthur-debert/ctp/pkg/copier"
	"github.com/arthur-debert/ctp/pkg/logging"
	"github.com/arthur-debert/ctp/pkg/options"
	"github.com/arthur-debert/ctp/pkg/runner"
	"github.com/arthur-debert/ctp/pkg/scaffold"
	"github.com/arthur-debert/ctp/pkg/ui/styles"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity         int
		configPath        string
		output            string
		dryRun            bool
		binaryPassthrough bool
	)

	rootCmd := &cobra.Command{
		Use:     "ctp <language> <project-name>",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf(MsgErrMissingArgs, len(args))
			}
			return nil
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options.New(options.Raw{
				ConfigPath:        configPath,
				Language:          args[0],
				ProjectName:       args[1],
				OutputPath:        output,
				DryRun:            dryRun,
				BinaryPassthrough: binaryPassthrough,
			})
			if err != nil {
				return err
			}
			return runScaffold(cmd.Context(), cmd.OutOrStdout(), opts)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", MsgFlagConfig)
	rootCmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.Flags().BoolVar(&binaryPassthrough, "binary-passthrough", false, MsgFlagBinaryPassthrough)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newListCmd(&configPath))
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

func runScaffold(ctx context.Context, out io.Writer, opts options.Options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	doc, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	logger := logging.GetLogger("cli")
	s := scaffold.New(
		scaffold.WithRunner(runner.New(runner.WithOutput(out))),
		scaffold.WithCopier(copier.New(
			copier.WithBinaryPassthrough(opts.BinaryPassthrough),
			copier.WithFileHook(func(src, dst string) {
				logger.Info().Str("from", src).Str("to", dst).Msg("Copied file")
			}),
		)),
	)

	if opts.DryRun {
		plan, err := s.Plan(opts, doc)
		if err != nil {
			return err
		}
		printPlan(out, plan)
		return nil
	}

	result, err := s.Run(ctx, opts, doc)
	if err != nil {
		return err
	}

	logger.Info().
		Int("dirs", result.Stats.Dirs).
		Int("files", result.Stats.Files).
		Int("skipped", result.Stats.Skipped).
		Int("before", result.BeforeRun).
		Int("after", result.AfterRun).
		Msg("Project created")
	_, _ = fmt.Fprintln(out, styles.Render("Success",
		fmt.Sprintf(MsgCreatedFormat, opts.ProjectName, result.Output)))
	return nil
}

func printPlan(w io.Writer, plan scaffold.Plan) {
	_, _ = fmt.Fprintln(w, styles.Render("DryRunBanner", MsgDryRunBanner))
	_, _ = fmt.Fprintf(w, MsgPlanTemplate, styles.Render("FilePath", plan.Template))
	_, _ = fmt.Fprintf(w, MsgPlanOutput, styles.Render("FilePath", plan.Output))

	sections := []struct {
		variant  config.Variant
		commands []string
	}{
		{config.Before, plan.Before},
		{config.After, plan.After},
	}
	for _, section := range sections {
		if len(section.commands) == 0 {
			_, _ = fmt.Fprintf(w, MsgPlanNoCommands, section.variant)
			continue
		}
		_, _ = fmt.Fprintf(w, MsgPlanCommands, section.variant)
		for _, line := range section.commands {
			_, _ = fmt.Fprintf(w, MsgPlanCommandItem, styles.Render("Command", line))
		}
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  `Print detailed version information including commit hash and build date`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}
