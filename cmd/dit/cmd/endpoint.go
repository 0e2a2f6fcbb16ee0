package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SionoiS/dit/internal/config"
)

var endpointCmd = &cobra.Command{
	Use:   "endpoint",
	Short: "Print the daemon API address",
	Long:  "Print the persisted daemon API address, initializing it to the default on first use.",
	Args:  cobra.NoArgs,
	RunE:  runEndpoint,
}

func init() {
	rootCmd.AddCommand(endpointCmd)
}

func runEndpoint(cmd *cobra.Command, args []string) error {
	addr, err := config.Resolve(viper.GetViper(), configFile())
	if err != nil {
		return err
	}

	fmt.Println(addr)
	return nil
}
