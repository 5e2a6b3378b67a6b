package networks

import (
	"fmt"
)

var EthereumMainnet = NewGenericEtherscanNetwork(GenericEtherscanNetworkConfig{
	Name:              "mainnet",
	AlternativeNames:  []string{"ethereum", "eth"},
	ChainID:           1,
	NativeTokenSymbol: "ETH",
	BlockTime:         12,
	NodeVariableName:  "ETHEREUM_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"mainnet-llama":      "https://eth.llamarpc.com",
		"mainnet-ankr":       "https://rpc.ankr.com/eth",
		"mainnet-publicnode": "https://ethereum-rpc.publicnode.com",
	},
	BlockExplorerAPIKeyVariableName: "ETHERSCAN_API_KEY",
	BlockExplorerViewerURL:          "https://etherscan.io",
})

var Sepolia = NewGenericEtherscanNetwork(GenericEtherscanNetworkConfig{
	Name:              "sepolia",
	AlternativeNames:  []string{},
	ChainID:           11155111,
	NativeTokenSymbol: "ETH",
	BlockTime:         12,
	NodeVariableName:  "SEPOLIA_NODE",
	DefaultNodes: map[string]string{
		"sepolia-publicnode": "https://ethereum-sepolia-rpc.publicnode.com",
	},
	BlockExplorerAPIKeyVariableName: "ETHERSCAN_API_KEY",
	BlockExplorerViewerURL:          "https://sepolia.etherscan.io",
})

var BaseMainnet = NewGenericEtherscanNetwork(GenericEtherscanNetworkConfig{
	Name:              "base",
	AlternativeNames:  []string{},
	ChainID:           8453,
	NativeTokenSymbol: "ETH",
	BlockTime:         2,
	NodeVariableName:  "BASE_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"base-official": "https://mainnet.base.org",
	},
	BlockExplorerAPIKeyVariableName: "ETHERSCAN_API_KEY",
	BlockExplorerViewerURL:          "https://basescan.org",
})

var ArbitrumMainnet = NewGenericEtherscanNetwork(GenericEtherscanNetworkConfig{
	Name:              "arbitrum",
	AlternativeNames:  []string{"arb"},
	ChainID:           42161,
	NativeTokenSymbol: "ETH",
	BlockTime:         1,
	NodeVariableName:  "ARBITRUM_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"arbitrum-official": "https://arb1.arbitrum.io/rpc",
	},
	BlockExplorerAPIKeyVariableName: "ETHERSCAN_API_KEY",
	BlockExplorerViewerURL:          "https://arbiscan.io",
})

var OptimismMainnet = NewGenericEtherscanNetwork(GenericEtherscanNetworkConfig{
	Name:              "optimism",
	AlternativeNames:  []string{"op"},
	ChainID:           10,
	NativeTokenSymbol: "ETH",
	BlockTime:         2,
	NodeVariableName:  "OPTIMISM_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"optimism-official": "https://mainnet.optimism.io",
	},
	BlockExplorerAPIKeyVariableName: "ETHERSCAN_API_KEY",
	BlockExplorerViewerURL:          "https://optimistic.etherscan.io",
})

var Matic = NewGenericEtherscanNetwork(GenericEtherscanNetworkConfig{
	Name:              "polygon",
	AlternativeNames:  []string{"matic"},
	ChainID:           137,
	NativeTokenSymbol: "POL",
	BlockTime:         2,
	NodeVariableName:  "POLYGON_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"polygon-official": "https://polygon-rpc.com",
	},
	BlockExplorerAPIKeyVariableName: "ETHERSCAN_API_KEY",
	BlockExplorerViewerURL:          "https://polygonscan.com",
})

var BSCMainnet = NewGenericEtherscanNetwork(GenericEtherscanNetworkConfig{
	Name:              "bsc",
	AlternativeNames:  []string{"binance"},
	ChainID:           56,
	NativeTokenSymbol: "BNB",
	BlockTime:         3,
	NodeVariableName:  "BSC_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"bsc-binance":  "https://bsc-dataseed.binance.org",
		"bsc-defibit":  "https://bsc-dataseed1.defibit.io",
		"bsc-ninicoin": "https://bsc-dataseed1.ninicoin.io",
	},
	BlockExplorerAPIKeyVariableName: "ETHERSCAN_API_KEY",
	BlockExplorerViewerURL:          "https://bscscan.com",
})

// Insert more Network implementations here to support more chains
var supportedNetworks = []Network{
	EthereumMainnet,
	Sepolia,
	BaseMainnet,
	ArbitrumMainnet,
	OptimismMainnet,
	Matic,
	BSCMainnet,
}

var globalSupportedNetworks = newSupportedNetworks()

var ErrNetworkNotFound = fmt.Errorf("network not found")

type networkRegistry struct {
	networks     map[string]Network
	networksByID map[uint64]Network
}

func (n *networkRegistry) getSupportedNetworkNames() []string {
	res := []string{}
	for _, nw := range n.networks {
		res = append(res, nw.GetName())
	}
	return res
}

func (n *networkRegistry) getNetwork(name string) (Network, error) {
	res, found := n.networks[name]
	if !found {
		return nil, fmt.Errorf("network name '%s': %w", name, ErrNetworkNotFound)
	}
	return res, nil
}

func (n *networkRegistry) getNetworkByID(id uint64) (Network, error) {
	res, found := n.networksByID[id]
	if !found {
		return nil, fmt.Errorf("network id %d is not supported", id)
	}
	return res, nil
}

func newSupportedNetworks() *networkRegistry {
	result := networkRegistry{
		map[string]Network{},
		map[uint64]Network{},
	}
	for _, n := range supportedNetworks {
		if _, found := result.networks[n.GetName()]; found {
			panic(fmt.Errorf("network with name '%s' already exists", n.GetName()))
		}
		result.networks[n.GetName()] = n
		for _, alt := range n.GetAlternativeNames() {
			if _, found := result.networks[alt]; found {
				panic(fmt.Errorf("network with name '%s' already exists", alt))
			}
			result.networks[alt] = n
		}
		if _, found := result.networksByID[n.GetChainID()]; found {
			panic(fmt.Errorf("network with chain id %d already exists", n.GetChainID()))
		}
		result.networksByID[n.GetChainID()] = n
	}
	return &result
}

func GetSupportedNetworks() []Network {
	return supportedNetworks
}

func GetNetwork(name string) (Network, error) {
	return globalSupportedNetworks.getNetwork(name)
}

func GetNetworkByID(id uint64) (Network, error) {
	return globalSupportedNetworks.getNetworkByID(id)
}

func GetSupportedNetworkNames() []string {
	return globalSupportedNetworks.getSupportedNetworkNames()
}
