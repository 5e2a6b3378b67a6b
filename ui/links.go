package ui

import (
	"fmt"

	"github.com/revelio-tools/revelio/networks"
)

// ShareURL builds a link that opens the web viewer pre-filled with address,
// so a revealed message can be passed around.
func ShareURL(network networks.Network, address string) string {
	return fmt.Sprintf("https://revelio.tools/m/%s?chain=%d", address, network.GetChainID())
}

// ContractViewerURL deep-links to the contract's read tab on the network's
// explorer.
func ContractViewerURL(network networks.Network, address string) string {
	return fmt.Sprintf("%s/address/%s#readContract", network.GetBlockExplorerViewerURL(), address)
}
