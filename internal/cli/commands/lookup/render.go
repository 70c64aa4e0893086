package lookup

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/mpyw/sublook/internal/cli/colors"
	"github.com/mpyw/sublook/internal/cli/terminal"
	"github.com/mpyw/sublook/internal/usecase/subnet"
)

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

func writeTable(w io.Writer, subnets []subnet.SubnetInfo) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	if out := terminal.Inspect(w); out.TTY {
		t.SetStyle(table.StyleColoredBright)
		t.SetAllowedRowLength(out.Width)
	}

	t.AppendHeader(table.Row{"Subnet ID", "VPC ID", "AZ", "CIDR Block", "Name", "State"})
	for _, s := range subnets {
		t.AppendRow(table.Row{colors.SubnetID(s.SubnetID), s.VPCID, s.AvailabilityZone, s.CIDRBlock, s.Name, s.State})
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d subnet(s)", len(subnets))})

	t.Render()
}
