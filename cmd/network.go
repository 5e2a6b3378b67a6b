package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/revelio-tools/revelio/networks"
)

var networkCmd = &cobra.Command{
	Use:   "networks",
	Short: "List supported networks and their configuration knobs",
	Run: func(cmd *cobra.Command, args []string) {
		for _, n := range networks.GetSupportedNetworks() {
			names := n.GetName()
			if alts := n.GetAlternativeNames(); len(alts) > 0 {
				names = fmt.Sprintf("%s (%s)", names, strings.Join(alts, ", "))
			}
			fmt.Printf("%s\n", names)
			fmt.Printf("  chain id:     %d\n", n.GetChainID())
			fmt.Printf("  explorer:     %s\n", n.GetBlockExplorerViewerURL())
			fmt.Printf("  node env var: %s\n", n.GetNodeVariableName())
		}
	},
}

func init() {
	rootCmd.AddCommand(networkCmd)
}
