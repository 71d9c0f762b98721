package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/doctorshouse/backend/cmd/http"
	systemcmd "github.com/doctorshouse/backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "doctorshouse",
	Short: "Doctors House clinic-booking backend.",
	Long: `Doctors House is the REST backend for the clinic-booking web application.
It serves the users, doctors, reviews and appointments collections and guards
admin operations behind bearer-token authentication.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
