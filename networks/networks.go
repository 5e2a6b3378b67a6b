package networks

import (
	"fmt"
	"sync"

	"github.com/sahilm/fuzzy"
)

var (
	cachedNetwork Network
	mu            sync.Mutex
)

// CurrentNetwork returns the network selected by the --network flag,
// defaulting to mainnet when the flag value doesn't match anything.
func CurrentNetwork() Network {
	mu.Lock()
	defer mu.Unlock()

	if cachedNetwork == nil {
		cachedNetwork = EthereumMainnet
	}
	return cachedNetwork
}

// SetNetwork resolves networkStr against the registry and caches the result.
// On an unknown name it returns an error mentioning the closest known names
// so typos like "mainet" are easy to recover from.
func SetNetwork(networkStr string) error {
	mu.Lock()
	defer mu.Unlock()

	n, err := GetNetwork(networkStr)
	if err != nil {
		if suggestions := closestNetworkNames(networkStr); len(suggestions) > 0 {
			return fmt.Errorf(
				"unsupported network '%s', did you mean one of %v?",
				networkStr, suggestions,
			)
		}
		return fmt.Errorf("unsupported network '%s'", networkStr)
	}
	cachedNetwork = n
	return nil
}

func closestNetworkNames(input string) []string {
	names := GetSupportedNetworkNames()
	matches := fuzzy.Find(input, names)
	result := []string{}
	for i, m := range matches {
		if i >= 3 {
			break
		}
		result = append(result, m.Str)
	}
	return result
}
