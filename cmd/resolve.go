package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/fabric/core/block"
	"github.com/kilianp07/fabric/core/registry"
)

func newResolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <noc-id>",
		Short: "Show which block a NoC ID resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := block.ParseNocID(args[0])
			if err != nil {
				return err
			}
			svc, err := newService(opts)
			if err != nil {
				return err
			}
			defer svc.Close()

			_, name, err := svc.Store.Resolve(id)
			if errors.Is(err, registry.ErrNotFound) {
				return fmt.Errorf("%w; link the block implementation or map the id in the descriptor manifest", err)
			}
			if err != nil {
				return err
			}
			table := "direct"
			if key, ok := svc.Index.Translate(id); ok && svc.Store.Descriptor().Contains(key) {
				table = fmt.Sprintf("descriptor %q", string(key))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", id, name, table)
			return nil
		},
	}
}
