package commands

import (
	"github.com/spf13/cobra"
)

func DoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate configuration, credentials, and provider health",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := setup(cmd)
			report := e.router.Doctor()
			if _, err := e.historyStore(); err != nil {
				report.Healthy = false
				report.Summary += " | history: " + err.Error()
			}
			return emit(cmd, report)
		},
	}
	return cmd
}
