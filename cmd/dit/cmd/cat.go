package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var catCmd = &cobra.Command{
	Use:   "cat <path>",
	Short: "Read content-addressed bytes",
	Long:  "Fetch the full content at an IPFS path and write it to stdout.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCat,
}

func init() {
	rootCmd.AddCommand(catCmd)
}

func runCat(cmd *cobra.Command, args []string) (err error) {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := client.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	data, err := client.Cat(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(data)
	return err
}
