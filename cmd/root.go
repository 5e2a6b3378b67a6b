package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/revelio-tools/revelio/config"
	"github.com/revelio-tools/revelio/logging"
	"github.com/revelio-tools/revelio/networks"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "revelio",
	Short: "Reveal the message stored in a verified smart contract",
	Long: `Revelio resolves a human-readable message stored in a smart contract and
reveals it letter by letter, the way it was meant to be read.

Given a contract address, it validates the address, confirms a contract
actually lives there, pulls the verified interface from the network's
explorer, picks the function that returns the message and calls it without
sending any transaction. Unverified contracts and functions that take
parameters are not supported.

Revelio talks to public RPC nodes by default. You can point it at your own
node by setting the network's node env var (see 'revelio networks' for the
variable names) and use your own etherscan API key via ETHERSCAN_API_KEY to
avoid the shared rate-limited one.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if config.Verbose {
			logging.EnableDebug()
		}
		return networks.SetNetwork(config.Network)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	rootCmd.PersistentFlags().StringVarP(&config.Network, "network", "k", "mainnet",
		fmt.Sprintf("network to resolve on. Valid values: %v", networks.GetSupportedNetworkNames()))
	rootCmd.PersistentFlags().Uint64Var(&config.TickMs, "tick", 35,
		"milliseconds between revealed characters")
	rootCmd.PersistentFlags().BoolVarP(&config.Verbose, "verbose", "v", false,
		"log each resolution step to stderr")
	rootCmd.PersistentFlags().BoolVar(&config.NoColor, "no-color", false,
		"disable coloured output even on a terminal")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
