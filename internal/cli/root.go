// Package cli implements the gvltctl command tree.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	gevulot "github.com/gevulot-network/gevulot-go"
)

var (
	endpoint string
	chainID  string
	denom    string
	gasPrice uint64
	verbose  bool

	client *gevulot.Client
)

var rootCmd = &cobra.Command{
	Use:   "gvltctl",
	Short: "Command line client for the Gevulot network",
	Long: `gvltctl talks to a Gevulot node over gRPC: it registers workers,
submits tasks and workflows, pins data, and inspects ledger state.

The signing key comes from the GEVULOT_MNEMONIC environment variable
(optionally GEVULOT_PASSPHRASE); a .env file in the working directory
is loaded first. Without a mnemonic a throwaway key is generated,
which is enough for read-only commands.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Missing .env is fine; environment variables still apply.
		_ = godotenv.Load()

		logger := logrus.New()
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		} else {
			logger.SetOutput(io.Discard)
		}

		if endpoint == "" {
			endpoint = os.Getenv("GEVULOT_ENDPOINT")
		}
		if endpoint == "" {
			endpoint = "localhost:9090"
		}
		if chainID == "" {
			chainID = os.Getenv("GEVULOT_CHAIN_ID")
		}

		builder := gevulot.NewClientBuilder().
			Endpoint(endpoint).
			Logger(logger)
		if chainID != "" {
			builder = builder.ChainID(chainID)
		}
		if denom != "" {
			builder = builder.Denom(denom)
		}
		if gasPrice > 0 {
			builder = builder.GasPrice(gasPrice)
		}
		if mnemonic := os.Getenv("GEVULOT_MNEMONIC"); mnemonic != "" {
			builder = builder.Mnemonic(mnemonic).Passphrase(os.Getenv("GEVULOT_PASSPHRASE"))
		}

		var err error
		client, err = builder.Build(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to set up client: %w", err)
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// printYAML renders an entity the way manifests are written, so output
// can be edited and fed back in with create -f.
func printYAML(v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&endpoint, "endpoint", "e", "", "gRPC endpoint of a node (default $GEVULOT_ENDPOINT or localhost:9090)")
	rootCmd.PersistentFlags().StringVar(&chainID, "chain-id", "", "chain id (default $GEVULOT_CHAIN_ID or "+gevulot.DefaultChainID+")")
	rootCmd.PersistentFlags().StringVar(&denom, "denom", "", "fee denomination (default "+gevulot.DefaultDenom+")")
	rootCmd.PersistentFlags().Uint64Var(&gasPrice, "gas-price", 0, "fee charged per gas unit")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
