package explorers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// EtherscanLikeExplorer talks to any explorer exposing the etherscan API
// shape. The same code serves etherscan itself and its many per-chain clones
// since they all share the api?module=contract&action=getabi convention.
type EtherscanLikeExplorer struct {
	ChainID uint64

	Domain string
	APIKey string

	client *http.Client
}

func NewEtherscanLikeExplorer(chainID uint64, domain, apiKey string) *EtherscanLikeExplorer {
	return &EtherscanLikeExplorer{
		ChainID: chainID,
		Domain:  domain,
		APIKey:  apiKey,
		client:  http.DefaultClient,
	}
}

func (ee *EtherscanLikeExplorer) GetABIStringAPIURL(address string) string {
	return fmt.Sprintf(
		"%s/api?chainid=%d&module=contract&action=getabi&address=%s&apikey=%s",
		ee.Domain,
		ee.ChainID,
		address,
		ee.APIKey,
	)
}

type abiresponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Result  string `json:"result"`
}

func (ar *abiresponse) IsOK() bool {
	return ar.Status == "1"
}

// GetABIString returns the verified ABI of address as a JSON array string.
// A non-"1" status means the contract is not verified on the explorer; the
// result field then carries the explorer's error text instead of an ABI.
func (ee *EtherscanLikeExplorer) GetABIString(ctx context.Context, address string) (string, error) {
	url := ee.GetABIStringAPIURL(address)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := ee.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	abiresp := abiresponse{}
	err = json.Unmarshal(body, &abiresp)
	if err != nil {
		return "", fmt.Errorf("couldn't unmarshal %s to abi response: %w", string(body), ErrNotVerified)
	}
	if !abiresp.IsOK() {
		return "", fmt.Errorf("error from %s: %s: %s: %w", ee.Domain, abiresp.Message, abiresp.Result, ErrNotVerified)
	}
	return normalizeABIPayload(abiresp.Result), nil
}

// normalizeABIPayload unwraps a double-JSON-encoded ABI. Some explorer
// backends emit result as "\"[...]\"" instead of the array string itself.
func normalizeABIPayload(payload string) string {
	trimmed := strings.TrimSpace(payload)
	if strings.HasPrefix(trimmed, `"`) {
		var unwrapped string
		if err := json.Unmarshal([]byte(trimmed), &unwrapped); err == nil {
			return unwrapped
		}
	}
	return trimmed
}
