package eth

import (
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/nootlab/nootmint/config"
	"github.com/nootlab/nootmint/contract/noot"
	"github.com/nootlab/nootmint/pkg/xcontext"
	"golang.org/x/net/html"
)

const (
	RpcTimeOut      = time.Second * 5
	MaxShuffleTimes = 20

	// Nodes further than this many blocks from the median height are considered stale.
	MaxHeightDistance = 5
)

// A wrapper around eth.client so that we can mock in adapter tests.
type EthClient interface {
	Start(ctx context.Context)

	ChainID() *big.Int
	BlockNumber(ctx context.Context) (uint64, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SendTransaction(ctx context.Context, tx *ethtypes.Transaction) error
	BalanceAt(ctx context.Context, from common.Address, block *big.Int) (*big.Int, error)

	HasClaimedFreeMint(ctx context.Context, contract, account common.Address) (bool, error)
	FreeMintAmount(ctx context.Context, contract common.Address) (*big.Int, error)
	PaidMintFee(ctx context.Context, contract common.Address) (*big.Int, error)
	GetSignedPaidMintTx(ctx context.Context, contract common.Address, key *ecdsa.PrivateKey, fee *big.Int) (*ethtypes.Transaction, error)
}

// Default implementation of ETH client. Since eth RPC often unstable, this client maintains a list
// of different RPC to connect to and uses the ones that is stable to send requests.
type defaultEthClient struct {
	chain           string
	chainID         *big.Int
	useExternalRpcs bool
	configuredRpcs  []string
	refresh         time.Duration

	clients   []*ethclient.Client
	healthies []bool
	rpcs      []string

	mutex sync.RWMutex
}

func NewEthClients(cfg config.ChainConfig) EthClient {
	return &defaultEthClient{
		chain:           cfg.Chain,
		chainID:         big.NewInt(cfg.ChainID),
		useExternalRpcs: cfg.UseExternalRPC,
		configuredRpcs:  cfg.Rpcs,
		refresh:         cfg.RefreshConnectionFrequency.Duration,
		mutex:           sync.RWMutex{},
	}
}

func (c *defaultEthClient) Start(ctx context.Context) {
	go c.loopCheck(ctx)
}

func (c *defaultEthClient) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

// loopCheck refreshes the healthy node list until ctx is done.
func (c *defaultEthClient) loopCheck(ctx context.Context) {
	if c.refresh <= 0 {
		return
	}

	ticker := time.NewTicker(c.refresh)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.closeAll()
			return
		case <-ticker.C:
			c.updateRpcs(ctx)
		}
	}
}

func (c *defaultEthClient) closeAll() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for _, client := range c.clients {
		client.Close()
	}
	c.clients, c.healthies, c.rpcs = nil, nil, nil
}

func (c *defaultEthClient) updateRpcs(ctx context.Context) {
	rpcs := append([]string{}, c.configuredRpcs...)
	if len(rpcs) == 0 && !c.useExternalRpcs {
		xcontext.Logger(ctx).Errorf("Cannot get any connections of chain %s", c.chain)
	}

	if c.useExternalRpcs {
		// Get external rpcs.
		externals, err := c.GetExtraRpcs(ctx)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Failed to get external rpc info: %v", err)
		} else {
			rpcs = append(rpcs, externals...)
		}
	}

	rpcs, clients, healthies := c.getRpcsHealthiness(ctx, rpcs)

	// Close all the old clients
	c.mutex.Lock()
	for _, client := range c.clients {
		client.Close()
	}

	c.rpcs, c.clients, c.healthies = rpcs, clients, healthies
	c.mutex.Unlock()
}

func (c *defaultEthClient) getRpcsHealthiness(ctx context.Context, allRpcs []string) ([]string, []*ethclient.Client, []bool) {
	clients := make([]*ethclient.Client, 0)
	rpcs := make([]string, 0)
	healthies := make([]bool, 0)

	type healthyNode struct {
		client *ethclient.Client
		rpc    string
		height int64
	}

	nodes := make([]*healthyNode, 0)
	for _, rpc := range allRpcs {
		client, err := ethclient.DialContext(ctx, rpc)
		if err != nil {
			continue
		}

		callCtx, cancel := context.WithTimeout(ctx, RpcTimeOut)
		height, err := client.BlockNumber(callCtx)
		cancel()

		if err != nil {
			client.Close()
			continue
		}

		nodes = append(nodes, &healthyNode{
			client: client,
			rpc:    rpc,
			height: int64(height),
		})
	}

	if len(nodes) == 0 {
		return rpcs, clients, healthies
	}

	// Sorts all nodes by height
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].height > nodes[j].height
	})

	// Only select some nodes within a certain height from the median
	height := nodes[len(nodes)/2].height
	for _, node := range nodes {
		if absInt64(node.height-height) < MaxHeightDistance {
			rpcs = append(rpcs, node.rpc)
			clients = append(clients, node.client)
			healthies = append(healthies, true)
		} else {
			node.client.Close()
		}
	}

	xcontext.Logger(ctx).Infof("Healthy rpcs for chain %s: %s", c.chain, rpcs)

	return rpcs, clients, healthies
}

// parseChainlistRpcs extracts the rpc urls from the json blob embedded in a chainlist.org chain
// page.
func parseChainlistRpcs(text string) ([]string, error) {
	tokenizer := html.NewTokenizer(strings.NewReader(text))
	var data string
	for {
		tokenType := tokenizer.Next()
		stop := false
		switch tokenType {
		case html.ErrorToken:
			stop = true

		case html.TextToken:
			text := tokenizer.Token().Data
			var js json.RawMessage
			if json.Unmarshal([]byte(text), &js) == nil {
				data = text
			}
		}

		if stop {
			break
		}
	}

	type result struct {
		Props struct {
			PageProps struct {
				Chain struct {
					Name string `json:"name"`
					RPC  []struct {
						Url string `json:"url"`
					} `json:"rpc"`
				} `json:"chain"`
			} `json:"pageProps"`
		} `json:"props"`
	}

	r := &result{}
	if err := json.Unmarshal([]byte(data), r); err != nil {
		return nil, fmt.Errorf("cannot parse chainlist data: %w", err)
	}

	ret := make([]string, 0)
	for _, rpc := range r.Props.PageProps.Chain.RPC {
		if strings.HasPrefix(rpc.Url, "http") {
			ret = append(ret, rpc.Url)
		}
	}

	return ret, nil
}

func (c *defaultEthClient) GetExtraRpcs(ctx context.Context) ([]string, error) {
	url := fmt.Sprintf("https://chainlist.org/chain/%d", c.chainID)
	xcontext.Logger(ctx).Infof("Getting extra rpcs status from remote link %s for chain %s",
		url, c.chain)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get chain list data, status code = %d", res.StatusCode)
	}

	bz, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	return parseChainlistRpcs(string(bz))
}

func (c *defaultEthClient) shuffle() ([]*ethclient.Client, []bool, []string) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	n := len(c.clients)
	if n == 0 {
		return nil, nil, nil
	}

	clients := make([]*ethclient.Client, n)
	healthy := make([]bool, n)
	rpcs := make([]string, n)

	copy(clients, c.clients)
	copy(healthy, c.healthies)
	copy(rpcs, c.rpcs)

	for i := 0; i < MaxShuffleTimes; i++ {
		x := rand.Intn(n)
		y := rand.Intn(n)

		clients[x], clients[y] = clients[y], clients[x]
		healthy[x], healthy[y] = healthy[y], healthy[x]
		rpcs[x], rpcs[y] = rpcs[y], rpcs[x]
	}

	return clients, healthy, rpcs
}

func (c *defaultEthClient) getHealthyClient(ctx context.Context) (*ethclient.Client, string) {
	c.mutex.RLock()
	empty := len(c.clients) == 0
	c.mutex.RUnlock()

	if empty {
		c.updateRpcs(ctx)
	}

	// Shuffle rpcs so that we will use different healthy rpc
	clients, healthies, rpcs := c.shuffle()
	for i, healthy := range healthies {
		if healthy {
			return clients[i], rpcs[i]
		}
	}

	return nil, ""
}

func (c *defaultEthClient) execute(ctx context.Context, f func(ctx context.Context, client *ethclient.Client, rpc string) (any, error)) (any, error) {
	client, rpc := c.getHealthyClient(ctx)
	if client == nil {
		return nil, fmt.Errorf("no healthy RPC for chain %s", c.chain)
	}

	ctx, cancel := context.WithTimeout(ctx, RpcTimeOut)
	defer cancel()

	ret, err := f(ctx, client, rpc)
	if err != nil {
		xcontext.Logger(ctx).Debugf("RPC call failed on %s: %v", rpc, err)
	}

	return ret, err
}

func (c *defaultEthClient) BlockNumber(ctx context.Context) (uint64, error) {
	num, err := c.execute(ctx, func(ctx context.Context, client *ethclient.Client, rpc string) (any, error) {
		return client.BlockNumber(ctx)
	})

	if err != nil {
		return 0, err
	}

	return num.(uint64), nil
}

func (c *defaultEthClient) TransactionReceipt(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error) {
	receipt, err := c.execute(ctx, func(ctx context.Context, client *ethclient.Client, rpc string) (any, error) {
		return client.TransactionReceipt(ctx, txHash)
	})

	if err != nil {
		return nil, err
	}

	return receipt.(*ethtypes.Receipt), nil
}

func (c *defaultEthClient) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	gas, err := c.execute(ctx, func(ctx context.Context, client *ethclient.Client, rpc string) (any, error) {
		return client.SuggestGasPrice(ctx)
	})

	if err != nil {
		return nil, err
	}

	return gas.(*big.Int), nil
}

func (c *defaultEthClient) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	nonce, err := c.execute(ctx, func(ctx context.Context, client *ethclient.Client, rpc string) (any, error) {
		return client.PendingNonceAt(ctx, account)
	})

	if err != nil {
		return 0, err
	}

	return nonce.(uint64), nil
}

func (c *defaultEthClient) SendTransaction(ctx context.Context, tx *ethtypes.Transaction) error {
	_, err := c.execute(ctx, func(ctx context.Context, client *ethclient.Client, rpc string) (any, error) {
		err := client.SendTransaction(ctx, tx)
		return 0, err
	})

	return err
}

func (c *defaultEthClient) BalanceAt(ctx context.Context, from common.Address, block *big.Int) (*big.Int, error) {
	balance, err := c.execute(ctx, func(ctx context.Context, client *ethclient.Client, rpc string) (any, error) {
		balance, err := client.BalanceAt(ctx, from, block)
		if err == nil && balance != nil && balance.Sign() == 0 {
			xcontext.Logger(ctx).Warnf("Balance of %s is 0 using URL %s", from, rpc)
		}

		return balance, err
	})

	if err != nil {
		return nil, err
	}

	return balance.(*big.Int), nil
}

func (c *defaultEthClient) HasClaimedFreeMint(ctx context.Context, contract, account common.Address) (bool, error) {
	claimed, err := c.execute(ctx, func(ctx context.Context, client *ethclient.Client, rpc string) (any, error) {
		instance, err := noot.NewNootCaller(contract, client)
		if err != nil {
			return nil, err
		}

		return instance.HasClaimedFreeMint(&bind.CallOpts{Context: ctx}, account)
	})

	if err != nil {
		return false, err
	}

	return claimed.(bool), nil
}

func (c *defaultEthClient) FreeMintAmount(ctx context.Context, contract common.Address) (*big.Int, error) {
	amount, err := c.execute(ctx, func(ctx context.Context, client *ethclient.Client, rpc string) (any, error) {
		instance, err := noot.NewNootCaller(contract, client)
		if err != nil {
			return nil, err
		}

		return instance.FREEMINTAMOUNT(&bind.CallOpts{Context: ctx})
	})

	if err != nil {
		return nil, err
	}

	return amount.(*big.Int), nil
}

func (c *defaultEthClient) PaidMintFee(ctx context.Context, contract common.Address) (*big.Int, error) {
	fee, err := c.execute(ctx, func(ctx context.Context, client *ethclient.Client, rpc string) (any, error) {
		instance, err := noot.NewNootCaller(contract, client)
		if err != nil {
			return nil, err
		}

		return instance.PAIDMINTFEE(&bind.CallOpts{Context: ctx})
	})

	if err != nil {
		return nil, err
	}

	return fee.(*big.Int), nil
}

// GetSignedPaidMintTx builds and signs paidMint() with the fee attached as value. The
// transaction is not sent.
func (c *defaultEthClient) GetSignedPaidMintTx(
	ctx context.Context,
	contract common.Address,
	key *ecdsa.PrivateKey,
	fee *big.Int,
) (*ethtypes.Transaction, error) {
	signedTx, err := c.execute(ctx, func(ctx context.Context, client *ethclient.Client, rpc string) (any, error) {
		instance, err := noot.NewNootTransactor(contract, client)
		if err != nil {
			return nil, err
		}

		return instance.PaidMint(c.TransactionOpts(ctx, key, fee))
	})

	if err != nil {
		return nil, err
	}

	return signedTx.(*ethtypes.Transaction), nil
}

func (c *defaultEthClient) TransactionOpts(
	ctx context.Context, fromPrivateKey *ecdsa.PrivateKey, value *big.Int,
) *bind.TransactOpts {
	signer := ethtypes.LatestSignerForChainID(c.chainID)

	return &bind.TransactOpts{
		From: crypto.PubkeyToAddress(fromPrivateKey.PublicKey),
		Signer: func(a common.Address, t *ethtypes.Transaction) (*ethtypes.Transaction, error) {
			return ethtypes.SignTx(t, signer, fromPrivateKey)
		},
		Value:   value,
		Context: ctx,
		NoSend:  true,
	}
}

func absInt64(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}
