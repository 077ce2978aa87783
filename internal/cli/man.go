package cli

import (
	"fmt"
	"os"

	"github.com/arthur-debert/ctp/internal/version"
	"github.com/arthur-debert/ctp/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "man",
		Short: MsgManShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir).
					WithDetail("path", dir)
			}

			header := &doc.GenManHeader{
				Title:   "CTP",
				Section: "1",
				Source:  "ctp " + version.Version,
				Manual:  "ctp manual",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, "failed to generate man pages").
					WithDetail("path", dir)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten, dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "man", MsgFlagManDir)

	return cmd
}
