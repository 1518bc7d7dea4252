package main

import (
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/spf13/cobra"

	"github.com/JohnLonginotto/ACGTrie/config"
)

const serviceName = "acgtrie"

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "acgtrie",
		Short:         "Build and query weighted tries of DNA sequences",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level, overrides the config")

	cmd.AddCommand(
		newBuildCmd(opts),
		newLookupCmd(opts),
		newChecksumCmd(opts),
		newTableCmd(opts),
		newVerifyCmd(opts),
	)
	return cmd
}

// setup loads the config and starts the logger. The returned func flushes the
// logger and must be deferred.
func (o *rootOptions) setup() (config.Config, logger.Logger, func(), error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	logger.New(cfg.LogLevel)
	return cfg, logger.Sugar.WithServiceName(serviceName), logger.OnExit, nil
}

// prefixFlag registers the common --prefix flag.
func prefixFlag(cmd *cobra.Command, prefix *string) {
	cmd.Flags().StringVarP(prefix, "prefix", "p", "", "file prefix of a built trie (defaults to the config output)")
}

func prefixOr(prefix string, cfg config.Config) string {
	if prefix != "" {
		return prefix
	}
	return cfg.Output
}
