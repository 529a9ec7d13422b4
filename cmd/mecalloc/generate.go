package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mecalloc/generator"
	"github.com/katalvlaran/mecalloc/placement"
)

func newGenerateCommand(a *app) *cobra.Command {
	var (
		output string
		name   string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random placement document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hg, err := generator.Random(a.cfg.GenVertices(), a.cfg.GenDelta(),
				generator.WithSeed(a.cfg.GenSeed()),
				generator.WithMaxWeight(a.cfg.GenMaxWeight()),
			)
			if err != nil {
				return err
			}
			if name == "" {
				name = fmt.Sprintf("random-n%d-d%d-s%d", a.cfg.GenVertices(), a.cfg.GenDelta(), a.cfg.GenSeed())
			}
			doc, err := placement.FromHyperGraph(name, hg)
			if err != nil {
				return err
			}

			a.logger.Info().
				Int("units", hg.VertexCount()).
				Int("placements", hg.HyperEdgeCount()).
				Int64("seed", a.cfg.GenSeed()).
				Msg("generated")

			if output == "" || output == "-" {
				return doc.Encode(cmd.OutOrStdout())
			}

			return doc.Save(output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&name, "name", "", "Document name")
	cmd.Flags().Int("vertices", 20, "Number of resource units")
	cmd.Flags().Int("delta", 3, "Maximum units per placement")
	cmd.Flags().Int64("seed", 1, "Random seed")
	cmd.Flags().Float64("max-weight", generator.DefaultMaxWeight, "Exclusive upper bound of unit weights")
	a.cfg.bind(cmd.Flags(), keyGenVertices, "vertices")
	a.cfg.bind(cmd.Flags(), keyGenDelta, "delta")
	a.cfg.bind(cmd.Flags(), keyGenSeed, "seed")
	a.cfg.bind(cmd.Flags(), keyGenMaxW, "max-weight")

	return cmd
}
