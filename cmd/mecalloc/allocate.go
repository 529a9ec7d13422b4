package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mecalloc/allocation"
	"github.com/katalvlaran/mecalloc/core"
	"github.com/katalvlaran/mecalloc/hypergraph"
	"github.com/katalvlaran/mecalloc/placement"
)

const (
	strategySequential = "sequential"
	strategyLocal      = "local"
)

var errUnknownStrategy = errors.New("unknown strategy")

func newAllocateCommand(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "allocate",
		Short: "Select conflict-free placements from a placement document",
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
			strategy, err := newStrategy(a.cfg, a.logger)
			if err != nil {
				return err
			}

			a.logger.Info().
				Str("document", doc.Name).
				Int("units", hg.VertexCount()).
				Int("placements", hg.HyperEdgeCount()).
				Str("strategy", strategy.Name()).
				Msg("allocating")

			selected, err := allocate(strategy, hg, a.logger)
			if err != nil {
				return fmt.Errorf("allocation failed: %w", err)
			}

			return printSelection(cmd.OutOrStdout(), strategy, hg, selected)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Placement document (YAML)")
	cmd.Flags().String("strategy", strategyLocal, "Allocation strategy: sequential or local")
	cmd.Flags().Int("delta", allocation.DefaultDelta, "Maximum claw size for the local strategy")
	cmd.Flags().Int("max-swaps", 0, "Stop the local strategy after this many swaps (0: no limit)")
	_ = cmd.MarkFlagRequired("file")
	a.cfg.bind(cmd.Flags(), keyStrategy, "strategy")
	a.cfg.bind(cmd.Flags(), keyDelta, "delta")
	a.cfg.bind(cmd.Flags(), keyMaxSwaps, "max-swaps")

	return cmd
}

// newStrategy builds the configured strategy.
func newStrategy(cfg *Config, logger zerolog.Logger) (allocation.Strategy, error) {
	opts := []allocation.Option{
		allocation.WithLogger(logger),
		allocation.WithDelta(cfg.Delta()),
		allocation.WithMaxSwaps(cfg.MaxSwaps()),
	}
	switch cfg.Strategy() {
	case strategySequential:
		return allocation.NewSequentialSearch(opts...), nil
	case strategyLocal:
		l, err := allocation.NewLocalSearch(opts...)
		if err != nil {
			return nil, err
		}

		return l, nil
	default:
		return nil, fmt.Errorf("%q (want %s or %s): %w",
			cfg.Strategy(), strategySequential, strategyLocal, errUnknownStrategy)
	}
}

// allocate runs s, reporting swap statistics when s is a LocalSearch.
func allocate(s allocation.Strategy, hg *hypergraph.HyperGraph, logger zerolog.Logger) ([]core.Vertex, error) {
	local, ok := s.(*allocation.LocalSearch)
	if !ok {
		return s.Allocate(hg)
	}
	selected, stats, err := local.AllocateWithStats(hg)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Str("initial_cost", stats.InitialCost.String()).
		Str("final_cost", stats.FinalCost.String()).
		Int("swaps", stats.Swaps).
		Int("passes", stats.Passes).
		Msg("local search finished")

	return selected, nil
}

func printSelection(w io.Writer, s allocation.Strategy, hg *hypergraph.HyperGraph, selected []core.Vertex) error {
	if _, err := fmt.Fprintf(w, "strategy: %s\n", s.Name()); err != nil {
		return err
	}
	for _, e := range hg.HyperEdgesFor(selected) {
		if _, err := fmt.Fprintf(w, "placement %s: units %v cost %s\n", e.ID(), e.VertexIDs(), e.Cost()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "total cost: %s\n", allocation.TotalCost(selected))

	return err
}
