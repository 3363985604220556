package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nootlab/nootmint/internal/domain/mint"
	"github.com/nootlab/nootmint/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startStatus(cctx *cli.Context) error {
	c, err := s.loadController(cctx, false)
	if err != nil {
		return err
	}
	defer c.Close()

	loadErr := c.Load(s.ctx)
	if err := s.printView(cctx, c); err != nil {
		return err
	}

	return loadErr
}

func (s *srv) startFreeMint(cctx *cli.Context) error {
	return s.submit(cctx, mint.KindFree)
}

func (s *srv) startPaidMint(cctx *cli.Context) error {
	return s.submit(cctx, mint.KindPaid)
}

// submit loads the account, sends one mint and waits until its receipt is observed.
func (s *srv) submit(cctx *cli.Context, kind mint.Kind) error {
	c, err := s.loadController(cctx, kind == mint.KindPaid)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.Load(s.ctx); err != nil {
		xcontext.Logger(s.ctx).Warnf("Submitting with placeholder terms: %v", err)
	}

	var attempt mint.TransactionAttempt
	if kind == mint.KindFree {
		attempt, err = c.SubmitFreeMint(s.ctx)
	} else {
		attempt, err = c.SubmitPaidMint(s.ctx)
	}

	if err == nil {
		xcontext.Logger(s.ctx).Infof("Waiting for receipt of %s", attempt.TxHash)
		err = waitReceipt(s.ctx, c, kind, xcontext.Configs(s.ctx).Mint.ReceiptPollInterval.Duration)
	}

	if perr := s.printView(cctx, c); perr != nil {
		return perr
	}

	return err
}

// loadController connects to the chain and creates a controller for the --account flag. When
// defaultSigner is set, a missing account falls back to the wallet address.
func (s *srv) loadController(cctx *cli.Context, defaultSigner bool) (mint.Controller, error) {
	if err := s.loadMint(); err != nil {
		return nil, err
	}

	account, err := mint.ParseAccount(cctx.String(accountFlag.Name))
	if err != nil {
		return nil, err
	}

	if !account.IsPresent() && defaultSigner {
		account = mint.NewAccount(s.signerAddr)
	}

	return s.newController(s.ctx, account), nil
}

// waitReceipt polls c until the attempt of kind has a receipt or its observation stopped.
func waitReceipt(ctx context.Context, c mint.Controller, kind mint.Kind, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		attempt := c.Snapshot().Attempt(kind)
		if attempt.HasReceipt() {
			return nil
		}

		if attempt.ObservationStopped() {
			return fmt.Errorf("cannot observe receipt of %s: %w", attempt.TxHash.Hex(), attempt.ObserveErr)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (s *srv) printView(cctx *cli.Context, c mint.Controller) error {
	b, err := json.MarshalIndent(mint.Render(c.Snapshot(), s.viewOpts), "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cctx.App.Writer, string(b))
	return err
}
