package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/google/uuid"
	"github.com/nootlab/nootmint/config"
	"github.com/nootlab/nootmint/internal/domain/blockchain/eth"
	"github.com/nootlab/nootmint/internal/domain/mint"
	"github.com/nootlab/nootmint/pkg/ethutil"
	"github.com/nootlab/nootmint/pkg/kafka"
	"github.com/nootlab/nootmint/pkg/logger"
	"github.com/nootlab/nootmint/pkg/pubsub"
	"github.com/nootlab/nootmint/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

type srv struct {
	app    *cli.App
	ctx    context.Context
	cancel context.CancelFunc

	ethClient eth.EthClient
	relayRPC  *rpc.Client
	publisher pubsub.Publisher
	stopper   interface{ Stop(context.Context) error }

	reader     mint.ContractReader
	sponsored  mint.SponsoredWriter
	paid       mint.PaidWriter
	receipts   mint.ReceiptWatcher
	signerAddr common.Address

	sessions *mint.SessionTable
	viewOpts mint.ViewOptions
}

// load runs before every command. It only reads the config and sets up logging, chain
// connections are opened by the commands that need them.
func (s *srv) load(cctx *cli.Context) error {
	s.ctx, s.cancel = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	if err := s.loadConfig(cctx); err != nil {
		return err
	}

	return s.loadLogger()
}

func (s *srv) loadConfig(cctx *cli.Context) error {
	cfg, err := config.Load(cctx.String("config"))
	if err != nil {
		return err
	}

	if level := cctx.String("log-level"); level != "" {
		cfg.Log.Level = level
	}

	s.ctx = xcontext.WithConfigs(s.ctx, cfg)
	return nil
}

func (s *srv) loadLogger() error {
	level, err := logger.ParseLevel(xcontext.Configs(s.ctx).Log.Level)
	if err != nil {
		return err
	}

	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(level))
	return nil
}

// loadMint connects to the chain and builds the controller collaborators. A free mint needs a
// relay and a paymaster, a paid mint needs a wallet key; missing ones leave that kind disabled.
func (s *srv) loadMint() error {
	cfg := xcontext.Configs(s.ctx)
	if err := cfg.Validate(); err != nil {
		return err
	}

	s.viewOpts = mint.ViewOptions{
		ExplorerURL:    cfg.Chain.ExplorerURL,
		CurrencySymbol: cfg.Chain.CurrencySymbol,
	}

	s.ethClient = eth.NewEthClients(cfg.Chain)
	s.ethClient.Start(s.ctx)

	contract, err := ethutil.ParseAddress(cfg.Contract.Address)
	if err != nil {
		return err
	}

	s.reader = eth.NewContractReader(s.ethClient, contract)
	s.receipts = eth.NewReceiptFetcher(s.ethClient, cfg.Chain.Chain, cfg.Mint.ReceiptPollInterval.Duration)

	if err := s.loadRelay(cfg, contract); err != nil {
		return err
	}

	if err := s.loadPaidMinter(cfg, contract); err != nil {
		return err
	}

	return s.loadPublisher(cfg)
}

func (s *srv) loadRelay(cfg config.Configs, contract common.Address) error {
	if cfg.Relay.URL == "" || cfg.Contract.Paymaster == "" {
		xcontext.Logger(s.ctx).Warnf("Relay or paymaster is not configured, free mint is disabled")
		return nil
	}

	paymaster, err := ethutil.ParseAddress(cfg.Contract.Paymaster)
	if err != nil {
		return err
	}

	s.relayRPC, err = rpc.DialContext(s.ctx, cfg.Relay.URL)
	if err != nil {
		return err
	}

	relay, err := eth.NewSponsoredRelay(s.relayRPC, cfg.Relay.Method, contract, paymaster)
	if err != nil {
		return err
	}

	s.sponsored = relay
	return nil
}

func (s *srv) loadPaidMinter(cfg config.Configs, contract common.Address) error {
	if cfg.Wallet.PrivateKey == "" {
		xcontext.Logger(s.ctx).Warnf("Wallet private key is not configured, paid mint is disabled")
		return nil
	}

	key, err := ethutil.LoadPrivateKey(cfg.Wallet.PrivateKey)
	if err != nil {
		return err
	}

	minter := eth.NewPaidMinter(cfg.Chain.Chain, s.ethClient, eth.NewEthDispatcher(s.ethClient), contract, key)
	s.paid = minter
	s.signerAddr = minter.SignerAddress()
	return nil
}

func (s *srv) loadPublisher(cfg config.Configs) error {
	if cfg.Kafka.Addr == "" {
		return nil
	}

	publisher, err := kafka.NewPublisher(uuid.NewString(), []string{cfg.Kafka.Addr})
	if err != nil {
		return err
	}

	s.publisher = publisher
	s.stopper = publisher
	return nil
}

func (s *srv) newController(ctx context.Context, account mint.Account) mint.Controller {
	return mint.NewController(ctx, account, s.reader, s.sponsored, s.paid, s.receipts, s.publisher)
}

func (s *srv) loadSessions() {
	s.sessions = mint.NewSessionTable(s.ctx, s.newController)
}

func (s *srv) close(*cli.Context) error {
	if s.sessions != nil {
		s.sessions.Close()
	}

	if s.stopper != nil {
		if err := s.stopper.Stop(s.ctx); err != nil {
			xcontext.Logger(s.ctx).Errorf("Cannot stop kafka publisher: %v", err)
		}
	}

	if s.relayRPC != nil {
		s.relayRPC.Close()
	}

	if s.cancel != nil {
		s.cancel()
	}

	return nil
}
