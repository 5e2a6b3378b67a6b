package explorers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleABI = `[{"type":"function","name":"getMessage","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]}]`

func newTestExplorer(handler http.HandlerFunc) (*EtherscanLikeExplorer, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewEtherscanLikeExplorer(1, server.URL, "testkey"), server
}

func TestGetABIStringSuccess(t *testing.T) {
	var gotQuery map[string]string
	ee, server := newTestExplorer(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"chainid": q.Get("chainid"),
			"module":  q.Get("module"),
			"action":  q.Get("action"),
			"address": q.Get("address"),
			"apikey":  q.Get("apikey"),
		}
		fmt.Fprintf(w, `{"status":"1","message":"OK","result":%q}`, sampleABI)
	})
	defer server.Close()

	abiStr, err := ee.GetABIString(context.Background(), "0x000000000000000000000000000000000000dead")
	require.NoError(t, err)
	assert.Equal(t, sampleABI, abiStr)
	assert.Equal(t, map[string]string{
		"chainid": "1",
		"module":  "contract",
		"action":  "getabi",
		"address": "0x000000000000000000000000000000000000dead",
		"apikey":  "testkey",
	}, gotQuery)
}

func TestGetABIStringNotVerified(t *testing.T) {
	ee, server := newTestExplorer(func(w http.ResponseWriter, r *http.Request) {
		// HTTP 200 with status "0" is how etherscan reports unverified contracts
		fmt.Fprint(w, `{"status":"0","message":"NOTOK","result":"Contract source code not verified"}`)
	})
	defer server.Close()

	_, err := ee.GetABIString(context.Background(), "0x000000000000000000000000000000000000dead")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotVerified)
	assert.ErrorContains(t, err, "Contract source code not verified")
}

func TestGetABIStringGarbageBody(t *testing.T) {
	ee, server := newTestExplorer(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>502 Bad Gateway</html>`)
	})
	defer server.Close()

	_, err := ee.GetABIString(context.Background(), "0x000000000000000000000000000000000000dead")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotVerified)
}

func TestGetABIStringTransportFailure(t *testing.T) {
	ee, server := newTestExplorer(func(w http.ResponseWriter, r *http.Request) {})
	server.Close() // connection refused from now on

	_, err := ee.GetABIString(context.Background(), "0x000000000000000000000000000000000000dead")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotVerified)
}

func TestGetABIStringContextCancelled(t *testing.T) {
	ee, server := newTestExplorer(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ee.GetABIString(ctx, "0x000000000000000000000000000000000000dead")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNormalizeABIPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{"plain array", sampleABI, sampleABI},
		{"double encoded", fmt.Sprintf("%q", sampleABI), sampleABI},
		{"surrounding whitespace", "  " + sampleABI + "\n", sampleABI},
		{"unterminated quote left alone", `"[`, `"[`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizeABIPayload(tc.payload))
		})
	}
}

func TestGetABIStringAPIURL(t *testing.T) {
	ee := NewEtherscanV2(8453)
	url := ee.GetABIStringAPIURL("0x000000000000000000000000000000000000dead")
	assert.Contains(t, url, "https://api.etherscan.io/v2/api?")
	assert.Contains(t, url, "chainid=8453")
	assert.Contains(t, url, "module=contract")
	assert.Contains(t, url, "action=getabi")
	assert.Contains(t, url, "address=0x000000000000000000000000000000000000dead")
}
