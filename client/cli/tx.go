package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	"github.com/cosmos/cosmos-sdk/version"

	"github.com/cosmos/ibc-go/modules/rate-limiter/types"
)

// parseQuota parses a quota argument of the form name:maxSend:maxRecv:durationSeconds
func parseQuota(arg string) (types.Quota, error) {
	parts := strings.Split(arg, ":")
	if len(parts) != 4 {
		return types.Quota{}, fmt.Errorf("expected quota of the form name:maxSend:maxRecv:durationSeconds, got %s", arg)
	}

	maxSend, err := sdkmath.ParseUint(parts[1])
	if err != nil {
		return types.Quota{}, fmt.Errorf("invalid max send amount %s: %w", parts[1], err)
	}

	maxRecv, err := sdkmath.ParseUint(parts[2])
	if err != nil {
		return types.Quota{}, fmt.Errorf("invalid max receive amount %s: %w", parts[2], err)
	}

	durationSeconds, err := strconv.ParseUint(parts[3], 10, 64)
	if err != nil {
		return types.Quota{}, fmt.Errorf("invalid duration %s: %w", parts[3], err)
	}

	return types.NewQuota(parts[0], maxSend, maxRecv, durationSeconds), nil
}

// NewAddPathCmd returns the command to create a MsgAddPath
func NewAddPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-path [owner] [channel-id] [denom] [quota]...",
		Short: "Configure the quota list for a path, overwriting any existing configuration",
		Long: strings.TrimSpace(
			fmt.Sprintf(`Configure the quota list for a path. Each quota is given as name:maxSend:maxRecv:durationSeconds.
The transaction must be signed by the module authority.

Example:
  $ %s tx %s add-path transfer channel-0 uatom weekly:1000:1000:604800 daily:100:100:86400
`,
				version.AppName, types.ModuleName,
			),
		),
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			signer := clientCtx.GetFromAddress().String()

			quotas := make([]types.Quota, 0, len(args)-3)
			for _, arg := range args[3:] {
				quota, err := parseQuota(arg)
				if err != nil {
					return err
				}
				quotas = append(quotas, quota)
			}

			msg := types.NewMsgAddPath(signer, types.NewPath(args[0], args[1], args[2]), quotas)

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// NewRemovePathCmd returns the command to create a MsgRemovePath
func NewRemovePathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove-path [owner] [channel-id] [denom]",
		Short:   "Remove the quota configuration for a path",
		Example: fmt.Sprintf("%s tx %s remove-path transfer channel-0 uatom", version.AppName, types.ModuleName),
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			signer := clientCtx.GetFromAddress().String()

			msg := types.NewMsgRemovePath(signer, types.NewPath(args[0], args[1], args[2]))

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// NewResetPathQuotaCmd returns the command to create a MsgResetPathQuota
func NewResetPathQuotaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reset-path-quota [owner] [channel-id] [denom] [quota-name]",
		Short:   "Open a fresh window for one named quota on a path",
		Example: fmt.Sprintf("%s tx %s reset-path-quota transfer channel-0 uatom weekly", version.AppName, types.ModuleName),
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			signer := clientCtx.GetFromAddress().String()

			msg := types.NewMsgResetPathQuota(signer, types.NewPath(args[0], args[1], args[2]), args[3])

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}
