package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gevulot-network/gevulot-go/signer"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Inspect accounts and move tokens",
}

var accountAddressCmd = &cobra.Command{
	Use:   "address",
	Short: "Print the configured signing address",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(client.Base.Address())
		return nil
	},
}

var accountBalanceCmd = &cobra.Command{
	Use:   "balance [address]",
	Short: "Show an account balance (defaults to your own)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		address := client.Base.Address()
		if len(args) == 1 {
			address = args[0]
		}
		coin, err := client.Base.Balance(cmd.Context(), address, "")
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n", coin.Amount, coin.Denom)
		return nil
	},
}

var accountTransferCmd = &cobra.Command{
	Use:   "transfer <to-address> <amount>",
	Short: "Send tokens to another account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return client.Base.Transfer(cmd.Context(), args[0], args[1])
	},
}

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a fresh mnemonic and address",
	Long: `Generate a new BIP-39 mnemonic and print it together with the
derived account address. Store the mnemonic safely; it is the only way
to recover the key.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := signer.NewSigner()
		if err != nil {
			return err
		}
		fmt.Printf("address:  %s\n", s.Address())
		fmt.Printf("mnemonic: %s\n", s.Mnemonic())
		return nil
	},
}

func init() {
	accountCmd.AddCommand(accountAddressCmd, accountBalanceCmd, accountTransferCmd)
	rootCmd.AddCommand(accountCmd, keygenCmd)
}
