package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/SionoiS/dit"
)

var subCmd = &cobra.Command{
	Use:   "sub <topic>",
	Short: "Subscribe to a pubsub topic",
	Long:  "Print inbound pubsub messages on a topic until interrupted.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSub,
}

func init() {
	rootCmd.AddCommand(subCmd)
}

func runSub(cmd *cobra.Command, args []string) (err error) {
	topic := args[0]

	client, err := newClient()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := client.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	err = client.Subscribe(ctx, topic, func(msg dit.Message) {
		fmt.Printf("%s: %s\n", msg.From, msg.Data)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Subscribed to %q. Ctrl-C to stop.\n", topic)
	<-ctx.Done()

	if uerr := client.Unsubscribe(topic); uerr != nil && !errors.Is(uerr, dit.ErrNotSubscribed) {
		return uerr
	}
	return nil
}
