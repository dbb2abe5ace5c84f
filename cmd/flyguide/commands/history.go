package commands

import (
	"github.com/beetlebot/flyguide/internal/core"
	"github.com/spf13/cobra"
)

func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear recent flight searches",
	}
	cmd.AddCommand(historyListCmd())
	cmd.AddCommand(historyShowCmd())
	cmd.AddCommand(historyClearCmd())
	return cmd
}

func historyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recent searches, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := setup(cmd).historyStore()
			if err != nil {
				return fail(err)
			}
			items, err := store.List()
			if err != nil {
				return fail(err)
			}
			return emit(cmd, items)
		},
	}
}

func historyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the parameters of one saved search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := setup(cmd).historyStore()
			if err != nil {
				return fail(err)
			}
			item, err := store.Get(args[0])
			if err != nil {
				return fail(core.NewValidationError("id", err.Error()))
			}
			return emit(cmd, item)
		},
	}
}

func historyClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all saved searches",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := setup(cmd).historyStore()
			if err != nil {
				return fail(err)
			}
			if err := store.Clear(); err != nil {
				return fail(err)
			}
			return emit(cmd, map[string]string{"status": "cleared"})
		},
	}
}
