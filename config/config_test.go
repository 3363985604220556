package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const sampleConfig = `
env = "test"

[log]
level = "debug"

[chain]
chain_id = 11124
rpcs = ["https://rpc.example.org"]

[contract]
address = "0x5407B5040dec3D339A9247f3654E59EEccbb6391"
paymaster = "0x5407B5040dec3D339A9247f3654E59EEccbb6391"

[mint]
receipt_poll_interval = "500ms"
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nootmint.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "test", cfg.Env)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, []string{"https://rpc.example.org"}, cfg.Chain.Rpcs)
	require.Equal(t, 500*time.Millisecond, cfg.Mint.ReceiptPollInterval.Duration)

	// Untouched sections keep their defaults.
	require.Equal(t, "https://sepolia.abscan.org", cfg.Chain.ExplorerURL)
	require.Equal(t, "relay_sendSponsoredTransaction", cfg.Relay.Method)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestConfigs_Validate(t *testing.T) {
	valid := Default()
	valid.Contract.Address = "0x5407B5040dec3D339A9247f3654E59EEccbb6391"

	tests := []struct {
		name    string
		modify  func(c *Configs)
		wantErr bool
	}{
		{name: "valid", modify: func(c *Configs) {}},
		{name: "missing contract", modify: func(c *Configs) { c.Contract.Address = "" }, wantErr: true},
		{
			name:    "contract address with extra hex digits",
			modify:  func(c *Configs) { c.Contract.Address = "0xe3d94b74131f3d831b407fcef76e7b8ee78f8096ab" },
			wantErr: true,
		},
		{name: "bad paymaster", modify: func(c *Configs) { c.Contract.Paymaster = "0x1234" }, wantErr: true},
		{name: "no rpc", modify: func(c *Configs) { c.Chain.Rpcs = nil }, wantErr: true},
		{name: "no rpc but external", modify: func(c *Configs) { c.Chain.Rpcs = nil; c.Chain.UseExternalRPC = true }},
		{name: "bad chain id", modify: func(c *Configs) { c.Chain.ChainID = 0 }, wantErr: true},
		{name: "zero poll interval", modify: func(c *Configs) { c.Mint.ReceiptPollInterval = Duration{} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			cfg.Chain.Rpcs = append([]string(nil), valid.Chain.Rpcs...)
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestServerConfigs_Address(t *testing.T) {
	require.Equal(t, "localhost:8080", Default().Server.Address())
}
