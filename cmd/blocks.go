package cmd

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newBlocksCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "blocks",
		Aliases: []string{"ls"},
		Short:   "List registered blocks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(opts)
			if err != nil {
				return err
			}
			defer svc.Close()

			var data [][]string
			for _, e := range svc.Store.DirectEntries() {
				data = append(data, []string{"direct", e.NocID.String(), e.Name})
			}
			for _, e := range svc.Store.DescriptorEntries() {
				data = append(data, []string{"descriptor", string(e.Key), e.Name})
			}
			renderTable(cmd.OutOrStdout(), []string{"TABLE", "ID", "NAME"}, data)

			if m := svc.Index.Mappings(); len(m) > 0 {
				data = data[:0]
				for _, row := range m {
					data = append(data, []string{row.NocID.String(), string(row.Key), row.Name})
				}
				io.WriteString(cmd.OutOrStdout(), "\n")
				renderTable(cmd.OutOrStdout(), []string{"NOC ID", "KEY", "LABEL"}, data)
			}
			return nil
		},
	}
}

func renderTable(w io.Writer, header []string, data [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}
