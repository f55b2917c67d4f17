package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kilianp07/fabric/core/block"
	"github.com/kilianp07/fabric/core/discovery"
)

func newEnumerateCmd(opts *options) *cobra.Command {
	var (
		nocIDs []string
		device int
	)
	cmd := &cobra.Command{
		Use:   "enumerate",
		Short: "Resolve and construct the blocks of a device",
		Long: "Resolve and construct the blocks of a device. Without --noc-id the\n" +
			"slots come from the discovery section of the configuration.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(opts)
			if err != nil {
				return err
			}
			defer svc.Close()

			slots := svc.Slots()
			if len(nocIDs) > 0 {
				slots = make([]discovery.Slot, 0, len(nocIDs))
				for port, s := range nocIDs {
					id, err := block.ParseNocID(s)
					if err != nil {
						return err
					}
					slots = append(slots, discovery.Slot{Device: device, Port: port, NocID: id})
				}
			}

			res, err := svc.Enumerate(cmd.Context(), slots)
			if err != nil {
				return err
			}
			data := make([][]string, 0, len(res.Blocks)+len(res.Skipped))
			for _, b := range res.Blocks {
				data = append(data, []string{strconv.Itoa(b.Slot.Port), b.ID.String(), b.Slot.NocID.String(), b.Name})
			}
			for _, s := range res.Skipped {
				data = append(data, []string{strconv.Itoa(s.Slot.Port), "-", s.Slot.NocID.String(), "skipped"})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "run %s\n", res.RunID)
			renderTable(cmd.OutOrStdout(), []string{"PORT", "BLOCK", "NOC ID", "NAME"}, data)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&nocIDs, "noc-id", nil, "NoC ID per port, in port order (repeatable)")
	cmd.Flags().IntVar(&device, "device", 0, "device index for --noc-id slots")
	return cmd
}
