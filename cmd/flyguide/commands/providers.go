package commands

import (
	"github.com/spf13/cobra"
)

func ProvidersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "providers",
		Short: "List and inspect search providers",
	}
	cmd.AddCommand(providersListCmd())
	return cmd
}

func providersListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all registered providers and their status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, setup(cmd).router.ProviderInfos())
		},
	}
	return cmd
}
