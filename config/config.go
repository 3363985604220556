package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common"
)

type Configs struct {
	Env string `toml:"env"`

	Log        LogConfigs      `toml:"log"`
	Chain      ChainConfig     `toml:"chain"`
	Contract   ContractConfigs `toml:"contract"`
	Wallet     WalletConfigs   `toml:"wallet"`
	Relay      RelayConfigs    `toml:"relay"`
	Mint       MintConfigs     `toml:"mint"`
	Server     ServerConfigs   `toml:"server"`
	Prometheus ServerConfigs   `toml:"prometheus"`
	Kafka      KafkaConfigs    `toml:"kafka"`
}

type LogConfigs struct {
	Level string `toml:"level"`
}

type ChainConfig struct {
	Chain   string   `toml:"chain" json:"chain"`
	Name    string   `toml:"name" json:"name"`
	ChainID int64    `toml:"chain_id" json:"chain_id"`
	Rpcs    []string `toml:"rpcs" json:"rpcs"`

	// Also pull public RPCs for ChainID from chainlist.org.
	UseExternalRPC             bool     `toml:"use_external_rpc" json:"use_external_rpc"`
	RefreshConnectionFrequency Duration `toml:"rpc_refresh_frequency" json:"rpc_refresh_frequency"`

	ExplorerURL    string `toml:"explorer_url" json:"explorer_url"`
	CurrencySymbol string `toml:"currency_symbol" json:"currency_symbol"`
}

type ContractConfigs struct {
	Address   string `toml:"address"`
	Paymaster string `toml:"paymaster"`
}

type WalletConfigs struct {
	PrivateKey string `toml:"private_key"`
}

type RelayConfigs struct {
	URL    string `toml:"url"`
	Method string `toml:"method"`
}

type MintConfigs struct {
	ReceiptPollInterval Duration `toml:"receipt_poll_interval"`
}

type ServerConfigs struct {
	Host           string   `toml:"host"`
	Port           string   `toml:"port"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

func (c ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type KafkaConfigs struct {
	Addr  string `toml:"addr"`
	Topic string `toml:"topic"`
}

// Duration lets durations be written as "5s" in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}

	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func Default() Configs {
	return Configs{
		Env: "local",
		Log: LogConfigs{Level: "info"},
		Chain: ChainConfig{
			Chain:                      "abstract-testnet",
			Name:                       "Abstract Testnet",
			ChainID:                    11124,
			Rpcs:                       []string{"https://api.testnet.abs.xyz"},
			RefreshConnectionFrequency: Duration{5 * time.Minute},
			ExplorerURL:                "https://sepolia.abscan.org",
			CurrencySymbol:             "ETH",
		},
		Relay: RelayConfigs{Method: "relay_sendSponsoredTransaction"},
		Mint:  MintConfigs{ReceiptPollInterval: Duration{2 * time.Second}},
		Server: ServerConfigs{
			Host: "localhost",
			Port: "8080",
		},
		Prometheus: ServerConfigs{
			Host: "localhost",
			Port: "9090",
		},
		Kafka: KafkaConfigs{Topic: "noot_mint_receipt"},
	}
}

// Load decodes the TOML file at path on top of Default. An empty path yields the defaults.
func Load(path string) (Configs, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Configs{}, fmt.Errorf("cannot decode config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the fields every command needs. Contract and paymaster addresses have no
// defaults and must be well-formed 20-byte hex addresses.
func (c Configs) Validate() error {
	if len(c.Chain.Rpcs) == 0 && !c.Chain.UseExternalRPC {
		return fmt.Errorf("chain.rpcs must not be empty")
	}

	if c.Chain.ChainID <= 0 {
		return fmt.Errorf("chain.chain_id must be positive")
	}

	if !common.IsHexAddress(c.Contract.Address) {
		return fmt.Errorf("contract.address %q is not a valid address", c.Contract.Address)
	}

	if c.Contract.Paymaster != "" && !common.IsHexAddress(c.Contract.Paymaster) {
		return fmt.Errorf("contract.paymaster %q is not a valid address", c.Contract.Paymaster)
	}

	if c.Mint.ReceiptPollInterval.Duration <= 0 {
		return fmt.Errorf("mint.receipt_poll_interval must be positive")
	}

	return nil
}
