package eth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const chainlistPage = `<!DOCTYPE html>
<html>
<head><title>Abstract Testnet RPC and Chain settings</title></head>
<body>
<div id="__next">Abstract Testnet</div>
<script id="__NEXT_DATA__" type="application/json">{"props":{"pageProps":{"chain":{"name":"Abstract Testnet","rpc":[{"url":"https://api.testnet.abs.xyz"},{"url":"wss://api.testnet.abs.xyz/ws"},{"url":"http://127.0.0.1:8545"}]}}}}</script>
</body>
</html>`

func Test_parseChainlistRpcs(t *testing.T) {
	rpcs, err := parseChainlistRpcs(chainlistPage)
	require.NoError(t, err)
	require.Equal(t, []string{"https://api.testnet.abs.xyz", "http://127.0.0.1:8545"}, rpcs)

	_, err = parseChainlistRpcs("<html><body>Not found</body></html>")
	require.Error(t, err)
}

func Test_absInt64(t *testing.T) {
	require.Equal(t, int64(3), absInt64(-3))
	require.Equal(t, int64(3), absInt64(3))
}
