package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mecalloc/hypergraph"
	"github.com/katalvlaran/mecalloc/placement"
)

func newInspectCommand(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the conflict structure and placement matrix of a document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := placement.Load(file)
			if err != nil {
				return err
			}
			hg, err := doc.HyperGraph()
			if err != nil {
				return err
			}

			return inspect(cmd.OutOrStdout(), doc.Name, hg)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Placement document (YAML)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func inspect(w io.Writer, name string, hg *hypergraph.HyperGraph) error {
	cg := hg.ConflictGraph()

	var sb strings.Builder
	if name != "" {
		fmt.Fprintf(&sb, "name: %s\n", name)
	}
	fmt.Fprintf(&sb, "units: %d\n", hg.VertexCount())
	fmt.Fprintf(&sb, "placements: %d\n", hg.HyperEdgeCount())
	fmt.Fprintf(&sb, "conflicts: %d\n", cg.EdgeCount())
	for _, e := range cg.Edges() {
		fmt.Fprintf(&sb, "  %s - %s\n", e.First().ID(), e.Second().ID())
	}
	fmt.Fprintf(&sb, "components: %v\n", cg.Components())
	sb.WriteString("placement matrix:\n")
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}

	return writeMatrix(w, hg)
}

// writeMatrix prints the placement matrix with unit IDs as row labels and
// placement IDs as column headers.
func writeMatrix(w io.Writer, hg *hypergraph.HyperGraph) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	header := []string{""}
	for _, e := range hg.HyperEdges() {
		header = append(header, e.ID())
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	vertices := hg.Vertices()
	for i, row := range hg.PlacementMatrix() {
		cells := []string{vertices[i].ID()}
		for _, c := range row {
			cells = append(cells, strconv.Itoa(c))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}
