package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/version"

	"github.com/cosmos/ibc-go/modules/rate-limiter/types"
)

// GetCmdQueryPathLimits implements a command to query the rate limits of a single path
func GetCmdQueryPathLimits() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path-limits [owner] [channel-id] [denom]",
		Short: "Query the rate limits configured for a path",
		Long: strings.TrimSpace(
			fmt.Sprintf(`Query the rate limits configured for a path, identified by its owner, channel id and denom.

Example:
  $ %s query %s path-limits transfer channel-0 uatom
`,
				version.AppName, types.ModuleName,
			),
		),
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			req := &types.QueryPathLimitsRequest{
				Owner:     args[0],
				ChannelId: args[1],
				Denom:     args[2],
			}
			res, err := queryClient.PathLimits(context.Background(), req)
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

// GetCmdQueryAllPathLimits returns all configured path limits.
func GetCmdQueryAllPathLimits() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-path-limits",
		Short: "Query for all configured path limits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			req := &types.QueryAllPathLimitsRequest{}
			res, err := queryClient.AllPathLimits(context.Background(), req)
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

// GetCmdQueryPathLimitsByChannel returns all path limits attached to a channel.
func GetCmdQueryPathLimitsByChannel() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path-limits-by-channel [channel-id]",
		Short: "Query for all path limits attached to the given channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			req := &types.QueryPathLimitsByChannelRequest{
				ChannelId: args[0],
			}
			res, err := queryClient.PathLimitsByChannel(context.Background(), req)
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

// GetCmdParams returns the command handler for rate-limiter parameter querying.
func GetCmdParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "params",
		Short:   "Query the current rate-limiter parameters",
		Long:    "Query the current rate-limiter parameters",
		Args:    cobra.NoArgs,
		Example: fmt.Sprintf("%s query %s params", version.AppName, types.ModuleName),
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.Params(context.Background(), &types.QueryParamsRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res.Params)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}
