package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <name>",
	Short: "Resolve an IPNS name",
	Long:  "Resolve an IPNS name (or CID) and print the first resolved path.",
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) (err error) {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := client.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	path, err := client.Resolve(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Println(path)
	return nil
}
