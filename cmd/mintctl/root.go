package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"subname-minter/internal/app"
	"subname-minter/internal/config"
	"subname-minter/internal/domain"
	"subname-minter/internal/logger"
)

type rootOptions struct {
	configPath     string
	privateKeyFile string
	backend        string
	printJSON      bool
	verbose        bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "mintctl",
		Short:         "Search and mint subnames under the configured parent name",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "configs", "directory containing config.yaml")
	cmd.PersistentFlags().StringVar(&opts.privateKeyFile, "private-key-file", "", "hex private key file used to sign mint transactions")
	cmd.PersistentFlags().StringVar(&opts.backend, "backend", "", "mint backend: onchain, sdk or offchain")
	cmd.PersistentFlags().BoolVar(&opts.printJSON, "json", false, "print results as JSON")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")

	cmd.AddCommand(
		newSearchCmd(opts),
		newMintCmd(opts),
		newSubnamesCmd(opts),
		newTextCmd(opts),
		newNetworksCmd(opts),
	)
	return cmd
}

// load reads the configuration and applies the command-line overrides.
func (o *rootOptions) load() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, err
	}
	if o.privateKeyFile != "" {
		cfg.Wallet.PrivateKeyFile = o.privateKeyFile
	}
	if o.backend != "" {
		cfg.Backend.Kind = o.backend
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}
	}

	cfg.Logger.Encoding = "console"
	cfg.Logger.Level = "warn"
	if o.verbose {
		cfg.Logger.Level = "debug"
	}
	zl, err := logger.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		return nil, nil, err
	}
	return cfg, zl, nil
}

// run builds the minter and hands it to fn. Failures are printed as the user-facing message.
func (o *rootOptions) run(cmd *cobra.Command, fn func(ctx context.Context, minter *app.App) error) error {
	cfg, zl, err := o.load()
	if err != nil {
		return err
	}
	defer zl.Sync()

	ctx := cmd.Context()
	minter, err := app.New(ctx, cfg, zl)
	if err != nil {
		return err
	}
	defer minter.Close()

	if err := fn(ctx, minter); err != nil {
		printError(cmd, err)
		return err
	}
	return nil
}

func printError(cmd *cobra.Command, err error) {
	kind := domain.Classify(err)
	fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", color.RedString("error[%s]:", kind), domain.UserMessage(err))
}
