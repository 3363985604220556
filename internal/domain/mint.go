package domain

import (
	"context"

	"github.com/nootlab/nootmint/internal/domain/mint"
	"github.com/nootlab/nootmint/internal/model"
	"github.com/nootlab/nootmint/pkg/enum"
	"github.com/nootlab/nootmint/pkg/errorx"
	"github.com/nootlab/nootmint/pkg/router"
	"github.com/nootlab/nootmint/pkg/xcontext"
)

type MintDomain interface {
	Get(context.Context, *model.GetMintRequest) (*model.GetMintResponse, error)
	Mint(context.Context, *model.MintRequest) (*model.MintResponse, error)
	Reload(context.Context, *model.MintRequest) (*model.ReloadMintResponse, error)
}

type mintDomain struct {
	sessions *mint.SessionTable
	viewOpts mint.ViewOptions
}

func NewMintDomain(sessions *mint.SessionTable, viewOpts mint.ViewOptions) MintDomain {
	return &mintDomain{
		sessions: sessions,
		viewOpts: viewOpts,
	}
}

func (d *mintDomain) Get(ctx context.Context, req *model.GetMintRequest) (*model.GetMintResponse, error) {
	account, err := mint.ParseAccount(req.Account)
	if err != nil {
		return nil, err
	}

	view := mint.Render(d.sessions.Get(ctx, account).Snapshot(), d.viewOpts)
	return (*model.GetMintResponse)(&view), nil
}

// Mint submits the mint kind named by the {kind} path parameter.
func (d *mintDomain) Mint(ctx context.Context, req *model.MintRequest) (*model.MintResponse, error) {
	kind, err := enum.ToEnum[mint.Kind](router.Param(ctx, "kind"))
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid mint kind: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid mint kind %q", router.Param(ctx, "kind"))
	}

	return d.submit(ctx, req, kind)
}

// submit returns an error only when the mint could not be attempted. A rejected write is part of
// the returned view.
func (d *mintDomain) submit(ctx context.Context, req *model.MintRequest, kind mint.Kind) (*model.MintResponse, error) {
	account, err := mint.ParseAccount(req.Account)
	if err != nil {
		return nil, err
	}

	c := d.sessions.Get(ctx, account)

	var attempt mint.TransactionAttempt
	switch kind {
	case mint.KindFree:
		attempt, err = c.SubmitFreeMint(ctx)
	default:
		attempt, err = c.SubmitPaidMint(ctx)
	}

	if attempt.Status == "" {
		return nil, err
	}

	if err != nil {
		xcontext.Logger(ctx).Debugf("The %s mint of %s was rejected: %v", kind, account, err)
	}

	resp := &model.MintResponse{
		AttemptID: attempt.ID.String(),
		Kind:      enum.ToString(kind),
		View:      mint.Render(c.Snapshot(), d.viewOpts),
	}

	if err == nil {
		resp.TxHash = attempt.TxHash.Hex()
	}

	return resp, nil
}

func (d *mintDomain) Reload(ctx context.Context, req *model.MintRequest) (*model.ReloadMintResponse, error) {
	account, err := mint.ParseAccount(req.Account)
	if err != nil {
		return nil, err
	}

	view := mint.Render(d.sessions.Reload(ctx, account).Snapshot(), d.viewOpts)
	return (*model.ReloadMintResponse)(&view), nil
}
