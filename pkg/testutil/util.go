package testutil

import (
	"context"

	"github.com/nootlab/nootmint/config"
	"github.com/nootlab/nootmint/pkg/logger"
	"github.com/nootlab/nootmint/pkg/xcontext"
)

const (
	ContractAddress  = "0x00000000000000000000000000000000000000aa"
	PaymasterAddress = "0x00000000000000000000000000000000000000cc"
)

// MockContext returns a context carrying the default configs, pointed at placeholder contract
// and paymaster addresses, and a silent logger.
func MockContext() context.Context {
	cfg := config.Default()
	cfg.Env = "test"
	cfg.Contract = config.ContractConfigs{
		Address:   ContractAddress,
		Paymaster: PaymasterAddress,
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	return ctx
}
