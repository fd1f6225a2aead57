package main

import (
	"context"
	"fmt"

	subgroup "github.com/aouyang1/go-subgroup"
	"github.com/aouyang1/go-subgroup/configs"
	"github.com/aouyang1/go-subgroup/dataset"
	"github.com/aouyang1/go-subgroup/results"
	"github.com/spf13/cobra"
)

// inputConfig holds the flags shared by every command that runs a discovery
type inputConfig struct {
	*rootCmdConfig
	datasetPath  string
	errorsPath   string
	targetColumn string
	class        string
	size         int
}

func (ic *inputConfig) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&(ic.datasetPath), "dataset", "d", "", "path to the dataset CSV with the features and the target column (required)")
	cmd.Flags().StringVarP(&(ic.errorsPath), "errors", "e", "", "path to the errors CSV with one error column per class, row aligned with the dataset (required)")
	cmd.Flags().StringVarP(&(ic.targetColumn), "target", "t", "target", "name of the target column of the dataset")
	cmd.Flags().StringVarP(&(ic.class), "class", "c", "", "class whose subgroups are reported (required)")
	cmd.Flags().IntVarP(&(ic.size), "size", "n", 0, "number of subgroups to find per class (overrides the config)")
}

func (ic *inputConfig) Validate() error {
	if err := ic.rootCmdConfig.Validate(); err != nil {
		return err
	}
	if ic.datasetPath == "" {
		return fmt.Errorf("required dataset flag was not set")
	}
	if ic.errorsPath == "" {
		return fmt.Errorf("required errors flag was not set")
	}
	if ic.class == "" {
		return fmt.Errorf("required class flag was not set")
	}
	if ic.size < 0 {
		return fmt.Errorf("size must be at least 1")
	}
	return nil
}

// run loads both tables, discovers the subgroups of every class and deduplicates them
func (ic *inputConfig) run(ctx context.Context) (*subgroup.Pipeline, *dataset.Table, *results.Table, error) {
	if err := ic.Validate(); err != nil {
		return nil, nil, nil, err
	}
	cfg, err := configs.Load(ic.configFile)
	if err != nil {
		return nil, nil, nil, err
	}
	if ic.size > 0 {
		cfg.ResultSetSize = ic.size
		if cfg.BeamWidth > 0 && cfg.BeamWidth < ic.size {
			cfg.BeamWidth = ic.size
		}
	}
	p, err := subgroup.New(cfg, subgroup.WithLogger(ic.logger()))
	if err != nil {
		return nil, nil, nil, err
	}

	data, err := dataset.LoadCSV(ic.datasetPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("reading dataset at %s: %w", ic.datasetPath, err)
	}
	errs, err := dataset.LoadCSV(ic.errorsPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("reading errors at %s: %w", ic.errorsPath, err)
	}

	found, err := p.Discover(ctx, data, errs, ic.targetColumn, ic.class)
	if err != nil {
		return nil, nil, nil, err
	}
	dedup, err := p.Deduplicate(ctx, found)
	if err != nil {
		return nil, nil, nil, err
	}
	return p, data, dedup, nil
}
