package cli

import (
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
)

// GetQueryCmd returns the cli query commands for this module.
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "ratelimiter",
		Short:                      "IBC rate-limiter querying subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		GetCmdQueryPathLimits(),
		GetCmdQueryAllPathLimits(),
		GetCmdQueryPathLimitsByChannel(),
		GetCmdParams(),
	)
	return cmd
}

// NewTxCmd returns the transaction commands for this module.
func NewTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "ratelimiter",
		Short:                      "IBC rate-limiter transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		NewAddPathCmd(),
		NewRemovePathCmd(),
		NewResetPathQuotaCmd(),
	)
	return cmd
}
