package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	gevulot "github.com/gevulot-network/gevulot-go"
	"github.com/gevulot-network/gevulot-go/types"
)

var (
	pinName         string
	pinSize         string
	pinTime         string
	pinRedundancy   uint64
	pinFallbackURLs []string
)

var pinCmd = &cobra.Command{
	Use:   "pin",
	Short: "Manage pinned data",
}

var pinListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all pins",
	RunE: func(cmd *cobra.Command, args []string) error {
		for pin, err := range client.Pins.List(cmd.Context()) {
			if err != nil {
				return err
			}
			if err := printYAML(pin); err != nil {
				return err
			}
			fmt.Println("---")
		}
		return nil
	},
}

var pinGetCmd = &cobra.Command{
	Use:   "get <cid>",
	Short: "Show one pin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pin, err := client.Pins.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printYAML(pin)
	},
}

var pinCreateCmd = &cobra.Command{
	Use:   "create [cid]",
	Short: "Ask the network to pin data",
	Long: `Pin data by content id, by fallback URL, or both. The size and
retention flags take human-readable quantities, e.g. --size 2gib
--time 30d.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, err := types.ParseQuantity(pinSize)
		if err != nil {
			return fmt.Errorf("bad --size: %w", err)
		}
		retention, err := types.ParseQuantity(pinTime)
		if err != nil {
			return fmt.Errorf("bad --time: %w", err)
		}

		builder := gevulot.NewPinBuilder().
			Name(pinName).
			Bytes(size).
			Time(retention).
			Redundancy(pinRedundancy).
			FallbackUrls(pinFallbackURLs...)
		if len(args) == 1 {
			builder = builder.Cid(args[0])
		}
		msg, err := builder.Build()
		if err != nil {
			return err
		}

		id, err := client.Pins.Create(cmd.Context(), msg)
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}

var pinDeleteCmd = &cobra.Command{
	Use:   "delete <cid> [id]",
	Short: "Release a pin you own",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		if len(args) == 2 {
			id = args[1]
		}
		return client.Pins.Delete(cmd.Context(), args[0], id)
	},
}

func init() {
	pinCreateCmd.Flags().StringVar(&pinName, "name", "", "human-readable pin name")
	pinCreateCmd.Flags().StringVar(&pinSize, "size", "", "size of the data, e.g. 2gib")
	pinCreateCmd.Flags().StringVar(&pinTime, "time", "30d", "retention period, e.g. 90d")
	pinCreateCmd.Flags().Uint64Var(&pinRedundancy, "redundancy", 1, "number of copies to keep")
	pinCreateCmd.Flags().StringSliceVar(&pinFallbackURLs, "fallback-url", nil, "alternative source for the data (repeatable)")
	pinCmd.AddCommand(pinListCmd, pinGetCmd, pinCreateCmd, pinDeleteCmd)
	rootCmd.AddCommand(pinCmd)
}
