package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dagCmd = &cobra.Command{
	Use:   "dag",
	Short: "DAG node operations",
}

var dagGetCmd = &cobra.Command{
	Use:   "get <cid> [path]",
	Short: "Fetch a DAG node value",
	Long:  "Fetch the node at cid, optionally restricted to a path within it, and print its value as JSON.",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runDagGet,
}

func init() {
	dagCmd.AddCommand(dagGetCmd)
	rootCmd.AddCommand(dagCmd)
}

func runDagGet(cmd *cobra.Command, args []string) (err error) {
	id := args[0]
	path := ""
	if len(args) > 1 {
		path = args[1]
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := client.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	value, err := client.DAGGet(cmd.Context(), id, path)
	if err != nil {
		return err
	}

	fmt.Println(string(value))
	return nil
}
