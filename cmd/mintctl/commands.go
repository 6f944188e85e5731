package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"subname-minter/internal/adapter/rpc"
	"subname-minter/internal/adapter/storage/memory"
	"subname-minter/internal/app"
	"subname-minter/internal/application"
	"subname-minter/internal/application/port"
	"subname-minter/internal/domain"
	"subname-minter/internal/domain/entity"
)

func newSearchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <label>",
		Short: "Check a label and list suggestions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, minter *app.App) error {
				session, err := minter.Service.OpenSession(ctx, port.ConnectRequest{})
				if err != nil {
					return err
				}
				result, err := minter.Service.Search(ctx, session.ID, args[0])
				if err != nil && result.Primary == "" {
					return err
				}
				if printErr := output(cmd.OutOrStdout(), opts.printJSON, result, renderSearch); printErr != nil {
					return printErr
				}
				return err
			})
		},
	}
}

func newMintCmd(opts *rootOptions) *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "mint <label>",
		Short: "Mint a subname for the configured wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, minter *app.App) error {
				session, err := minter.Service.OpenSession(ctx, port.ConnectRequest{})
				if err != nil {
					return err
				}
				outcome, err := minter.Service.Mint(ctx, session.ID, port.MintCommand{Label: args[0], Owner: owner})
				if printErr := output(cmd.OutOrStdout(), opts.printJSON, outcome, renderOutcome); printErr != nil {
					return printErr
				}
				return err
			})
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "address that receives the subname (defaults to the signer)")
	return cmd
}

func newSubnamesCmd(opts *rootOptions) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "subnames <owner>",
		Short: "List off-chain subnames owned by an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, minter *app.App) error {
				result, err := minter.Service.SubnamesByOwner(ctx, args[0], page)
				if err != nil {
					return err
				}
				return output(cmd.OutOrStdout(), opts.printJSON, result, renderSubnames)
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number, starting at 1")
	return cmd
}

func newTextCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "text <name> <key>",
		Short: "Read a text record of an off-chain subname",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, minter *app.App) error {
				value, err := minter.Service.TextRecord(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), value)
				return nil
			})
		},
	}
}

// newNetworksCmd only needs the registry and the RPC checker, so it does not dial a chain.
func newNetworksCmd(opts *rootOptions) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List known networks and, with --check, the health of their RPC endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, zl, err := opts.load()
			if err != nil {
				return err
			}
			defer zl.Sync()

			repo, err := app.NewNetworkRepository(cmd.Context(), cfg.Network, zl)
			if err != nil {
				return err
			}
			checker := application.NewNetworkChecker(repo, memory.NewCacheRepository(cfg.Checker, zl),
				rpc.NewChecker(zl), cfg.Checker, zl)

			w := cmd.OutOrStdout()
			for _, n := range checker.Networks() {
				active := ""
				if n.ID == cfg.Network.Active {
					active = color.CyanString(" (active)")
				}
				fmt.Fprintf(w, "%s%s  chain %d  %s\n", color.New(color.Bold).Sprint(n.ID), active, n.ChainID, n.Environment)
				if !check {
					continue
				}
				details, err := checker.CheckedRPCs(cmd.Context(), n.ID)
				if err != nil && len(details) == 0 {
					printError(cmd, err)
					continue
				}
				renderRPCs(w, details)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "probe every RPC endpoint")
	return cmd
}

func output[T any](w io.Writer, asJSON bool, v T, render func(io.Writer, T)) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		return nil
	}
	render(w, v)
	return nil
}

func renderSearch(w io.Writer, result entity.SearchResult) {
	switch result.Availability {
	case entity.AvailabilityAvailable:
		fmt.Fprintf(w, "%s is %s\n", result.Primary, color.GreenString("available"))
	case entity.AvailabilityTaken:
		fmt.Fprintf(w, "%s is %s\n", result.Primary, color.RedString("taken"))
	default:
		fmt.Fprintf(w, "%s: %s\n", result.Primary, color.YellowString("availability unknown"))
		return
	}

	for _, s := range result.Suggestions {
		mark := color.RedString("✗")
		if s.Mintable {
			mark = color.GreenString("✓")
		}
		note := ""
		if !s.Checked {
			note = color.HiBlackString(" (not checked)")
		}
		fmt.Fprintf(w, "  %s %s%s\n", mark, s.Name, note)
	}
}

func renderOutcome(w io.Writer, outcome entity.MintOutcome) {
	if outcome.Kind != domain.KindNone {
		fmt.Fprintf(w, "%s %s [%s]\n", color.RedString("mint failed:"), outcome.Name, outcome.Status)
		return
	}
	fmt.Fprintf(w, "%s %s via %s\n", color.GreenString("minted"), outcome.Name, outcome.Backend)
	if outcome.Estimate != nil {
		fmt.Fprintf(w, "  cost   %s ETH\n", outcome.Estimate.Total)
	}
	if outcome.TxHash != "" {
		fmt.Fprintf(w, "  tx     %s\n", outcome.TxHash)
	}
	if outcome.ExplorerURL != "" {
		fmt.Fprintf(w, "  view   %s\n", outcome.ExplorerURL)
	}
}

func renderSubnames(w io.Writer, page entity.SubnamePage) {
	if len(page.Items) == 0 {
		fmt.Fprintln(w, "no subnames")
		return
	}
	for _, s := range page.Items {
		fmt.Fprintf(w, "%s  %s\n", s.FullName, s.Owner.Hex())
	}
	if page.HasMore() {
		fmt.Fprintf(w, "page %d of %d results, use --page %d for more\n", page.Page, page.Total, page.Page+1)
	}
}

func renderRPCs(w io.Writer, details []entity.RPCDetail) {
	for _, d := range details {
		if d.IsWorking && d.LatencyMs != nil {
			fmt.Fprintf(w, "  %s %s %s\n", color.GreenString("up  "), d.URL, color.HiBlackString("%dms", *d.LatencyMs))
			continue
		}
		fmt.Fprintf(w, "  %s %s %s\n", color.RedString("down"), d.URL, color.HiBlackString("%s", d.Error))
	}
}
