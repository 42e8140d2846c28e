package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	gevulot "github.com/gevulot-network/gevulot-go"
)

var eventsFromHeight int64

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Follow ledger events",
}

var eventsWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Tail the chain and print every ledger event",
	RunE: func(cmd *cobra.Command, args []string) error {
		fetcher := gevulot.NewEventFetcher(client.Base, gevulot.EventHandlerFunc(func(ctx context.Context, ev gevulot.Event) error {
			fmt.Printf("--- # %s\n", ev.Kind())
			return printYAML(ev)
		}), gevulot.EventFetcherConfig{StartHeight: eventsFromHeight})

		err := fetcher.Run(cmd.Context())
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	eventsWatchCmd.Flags().Int64Var(&eventsFromHeight, "from", 0, "first block height to index (default: the current head)")
	eventsCmd.AddCommand(eventsWatchCmd)
	rootCmd.AddCommand(eventsCmd)
}
