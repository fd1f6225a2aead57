package main

import (
	"fmt"
	"log/slog"
	"os"

	subgroup "github.com/aouyang1/go-subgroup"
	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose    bool
	jsonLogs   bool
	configFile string
	format     string
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "subgroups",
		Short: "subgroups finds where a classifier's errors deviate from the average",
		Long: `A tool to discover interpretable feature space regions where a model's error is
much higher or much lower than on the whole dataset, and to merge near duplicate regions`,
		SilenceUsage: true,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log every discovery step")
	rootCmd.PersistentFlags().BoolVar(&(config.jsonLogs), "json-logs", false, "write logs as JSON lines")
	rootCmd.PersistentFlags().StringVar(&(config.configFile), "config", "", "path to a YAML file with discovery parameters")
	rootCmd.PersistentFlags().StringVarP(&(config.format), "format", "f", "text", "output format: text, json or yaml")
	rootCmd.AddCommand(discoverCmd(config), dendrogramCmd(config), filterCmd(config), regionsCmd(config))
	return rootCmd
}

func (c *rootCmdConfig) logger() *subgroup.Logger {
	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}
	if c.jsonLogs {
		return subgroup.NewJSONLogger(level)
	}
	return subgroup.NewTextLogger(level)
}

func (c *rootCmdConfig) Validate() error {
	switch c.format {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unsupported --format: %s (use text|json|yaml)", c.format)
}
