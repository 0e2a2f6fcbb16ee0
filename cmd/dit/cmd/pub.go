package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var pubCmd = &cobra.Command{
	Use:   "pub <topic> [message]",
	Short: "Publish a pubsub message",
	Long:  "Publish a message on a pubsub topic. With no message argument, the payload is read from stdin.",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runPub,
}

func init() {
	rootCmd.AddCommand(pubCmd)
}

func runPub(cmd *cobra.Command, args []string) (err error) {
	topic := args[0]

	var payload []byte
	if len(args) > 1 {
		payload = []byte(args[1])
	} else {
		payload, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
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

	return client.Publish(cmd.Context(), topic, payload)
}
