package mint

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	internalcommon "github.com/nootlab/nootmint/internal/common"
	"github.com/nootlab/nootmint/internal/domain/blockchain/types"
	"github.com/nootlab/nootmint/internal/model"
	"github.com/nootlab/nootmint/pkg/enum"
	"github.com/nootlab/nootmint/pkg/errorx"
	"github.com/nootlab/nootmint/pkg/pubsub"
	"github.com/nootlab/nootmint/pkg/xcontext"
	"golang.org/x/sync/errgroup"
)

type ContractReader interface {
	HasClaimedFreeMint(ctx context.Context, account common.Address) (bool, error)
	FreeMintAmount(ctx context.Context) (*big.Int, error)
	PaidMintFee(ctx context.Context) (*big.Int, error)
}

// SponsoredWriter submits freeMint() with gas paid by the paymaster.
type SponsoredWriter interface {
	WriteFreeMint(ctx context.Context, account common.Address) (common.Hash, error)
}

// PaidWriter submits paidMint() with fee attached as value.
type PaidWriter interface {
	WritePaidMint(ctx context.Context, account common.Address, fee *big.Int) (common.Hash, error)
}

type ReceiptWatcher interface {
	WaitReceipt(ctx context.Context, hash common.Hash) (*ethtypes.Receipt, error)
}

// Controller drives the mint flow of a single account.
type Controller interface {
	Account() Account
	Load(ctx context.Context) error
	SubmitFreeMint(ctx context.Context) (TransactionAttempt, error)
	SubmitPaidMint(ctx context.Context) (TransactionAttempt, error)
	Snapshot() State
	Close()
}

type controller struct {
	// rootCtx scopes receipt observation; it outlives the requests that submit.
	rootCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	reader    ContractReader
	sponsored SponsoredWriter
	paid      PaidWriter
	receipts  ReceiptWatcher
	publisher pubsub.Publisher

	mutex  sync.Mutex
	state  State
	closed bool
}

// NewController creates an unloaded controller. A nil writer disables that kind of mint and a
// nil publisher skips receipt notifications.
func NewController(
	ctx context.Context,
	account Account,
	reader ContractReader,
	sponsored SponsoredWriter,
	paid PaidWriter,
	receipts ReceiptWatcher,
	publisher pubsub.Publisher,
) *controller {
	rootCtx, cancel := context.WithCancel(ctx)
	return &controller{
		rootCtx:   rootCtx,
		cancel:    cancel,
		reader:    reader,
		sponsored: sponsored,
		paid:      paid,
		receipts:  receipts,
		publisher: publisher,
		state:     State{Account: account, Load: LoadUnloaded},
	}
}

func (c *controller) Account() Account {
	return c.state.Account
}

// Load reads eligibility and terms. A failed read leaves the controller unloaded; the error is
// logged and returned but nothing is retried.
func (c *controller) Load(ctx context.Context) error {
	account := c.state.Account
	if !account.IsPresent() {
		c.mutex.Lock()
		c.state.Load = LoadUnloaded
		c.mutex.Unlock()
		return nil
	}

	c.mutex.Lock()
	c.state.Load = LoadLoading
	c.mutex.Unlock()

	var (
		claimed     bool
		amount, fee *big.Int
		g           errgroup.Group
	)

	g.Go(func() error {
		var err error
		claimed, err = c.reader.HasClaimedFreeMint(ctx, account.Address())
		return err
	})
	g.Go(func() error {
		var err error
		amount, err = c.reader.FreeMintAmount(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		fee, err = c.reader.PaidMintFee(ctx)
		return err
	})

	err := g.Wait()

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load mint state of %s: %v", account, err)
		internalcommon.PromCounters[internalcommon.MintReadFailure].
			WithLabelValues(xcontext.Configs(c.rootCtx).Chain.Chain).Inc()

		c.state.Load = LoadUnloaded
		c.state.HasClaimedFreeMint = false
		c.state.Terms = MintTerms{}
		return err
	}

	c.state.Load = LoadLoaded
	c.state.HasClaimedFreeMint = claimed
	c.state.Terms = MintTerms{FreeMintAmount: amount, PaidMintFee: fee}
	return nil
}

func (c *controller) SubmitFreeMint(ctx context.Context) (TransactionAttempt, error) {
	c.mutex.Lock()
	if err := c.checkSubmittable(KindFree); err != nil {
		c.mutex.Unlock()
		return TransactionAttempt{}, err
	}

	if c.sponsored == nil {
		c.mutex.Unlock()
		return TransactionAttempt{}, errorx.New(errorx.Unavailable, "Free mint is not available")
	}

	if c.state.Load == LoadLoaded && c.state.HasClaimedFreeMint {
		c.mutex.Unlock()
		return TransactionAttempt{}, errorx.New(errorx.AlreadyClaimed, "Free mint was already claimed")
	}

	attempt := newAttempt(KindFree)
	c.state.Free = attempt
	c.mutex.Unlock()

	hash, err := c.sponsored.WriteFreeMint(ctx, c.state.Account.Address())
	return c.afterWrite(ctx, attempt, hash, err)
}

func (c *controller) SubmitPaidMint(ctx context.Context) (TransactionAttempt, error) {
	c.mutex.Lock()
	if err := c.checkSubmittable(KindPaid); err != nil {
		c.mutex.Unlock()
		return TransactionAttempt{}, err
	}

	if c.paid == nil {
		c.mutex.Unlock()
		return TransactionAttempt{}, errorx.New(errorx.Unavailable, "Paid mint is not available")
	}

	fee := c.state.Terms.PaidMintFee
	if fee == nil {
		c.mutex.Unlock()
		return TransactionAttempt{}, errorx.New(errorx.FeeUnknown, "Paid mint fee is not known yet")
	}

	attempt := newAttempt(KindPaid)
	c.state.Paid = attempt
	c.mutex.Unlock()

	hash, err := c.paid.WritePaidMint(ctx, c.state.Account.Address(), new(big.Int).Set(fee))
	return c.afterWrite(ctx, attempt, hash, err)
}

// checkSubmittable must be called with the mutex held.
func (c *controller) checkSubmittable(kind Kind) error {
	if !c.state.Account.IsPresent() {
		return errorx.New(errorx.AccountRequired, "Connect a wallet to mint")
	}

	if c.closed {
		return errorx.New(errorx.Unavailable, "The mint session was closed")
	}

	if c.state.Load == LoadLoading {
		return errorx.New(errorx.NotLoaded, "Mint terms are still loading")
	}

	attempt := c.state.Attempt(kind)
	if attempt.IsPending() {
		return errorx.New(errorx.MintPending, "A %s mint is already pending", kind)
	}

	if attempt.HasReceipt() {
		return errorx.New(errorx.MintCompleted, "The %s mint has already completed", kind)
	}

	return nil
}

func (c *controller) afterWrite(
	ctx context.Context,
	attempt *TransactionAttempt,
	hash common.Hash,
	err error,
) (TransactionAttempt, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot submit %s mint for %s: %v", attempt.Kind, c.state.Account, err)
		internalcommon.PromCounters[internalcommon.MintWriteFailure].
			WithLabelValues(string(attempt.Kind)).Inc()

		attempt.Status = AttemptFailed
		attempt.Err = err
		return *attempt, err
	}

	attempt.TxHash = hash
	internalcommon.PromCounters[internalcommon.MintSubmitted].WithLabelValues(string(attempt.Kind)).Inc()
	xcontext.Logger(ctx).Infof("Submitted %s mint for %s, txHash = %s", attempt.Kind, c.state.Account, hash)

	if c.closed {
		attempt.ObserveErr = errSessionClosed
		return *attempt, nil
	}

	c.wg.Add(1)
	go c.observe(attempt, hash)

	return *attempt, nil
}

var errSessionClosed = errors.New("mint session closed")

// observe waits for the receipt of a submitted mint. Giving up leaves the attempt pending with
// ObserveErr set.
func (c *controller) observe(attempt *TransactionAttempt, hash common.Hash) {
	defer c.wg.Done()

	ctx := c.rootCtx
	receipt, err := c.receipts.WaitReceipt(ctx, hash)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Stopped observing %s mint tx %s: %v", attempt.Kind, hash, err)

		c.mutex.Lock()
		attempt.ObserveErr = err
		c.mutex.Unlock()
		return
	}

	c.mutex.Lock()
	attempt.Status = AttemptSucceeded
	attempt.Receipt = receipt
	completed := *attempt
	c.mutex.Unlock()

	update := types.NewTrackUpdate(xcontext.Configs(ctx).Chain.Chain, receipt)
	internalcommon.PromCounters[internalcommon.MintReceiptObserved].
		WithLabelValues(string(completed.Kind), update.Result.String()).Inc()
	internalcommon.PromHistograms[internalcommon.MintReceiptWaitSeconds].
		WithLabelValues(string(completed.Kind)).Observe(time.Since(completed.SubmittedAt).Seconds())

	c.publish(ctx, completed, update)
}

func (c *controller) publish(ctx context.Context, attempt TransactionAttempt, update types.TrackUpdate) {
	if c.publisher == nil {
		return
	}

	msg := model.ReceiptMessage{
		AttemptID:   attempt.ID.String(),
		Kind:        enum.ToString(attempt.Kind),
		Account:     c.state.Account.String(),
		Chain:       update.Chain,
		TxHash:      attempt.TxHash.Hex(),
		BlockHeight: update.BlockHeight,
		GasUsed:     update.GasUsed,
		Result:      update.Result.String(),
		Timestamp:   time.Now(),
	}

	b, err := json.Marshal(msg)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot marshal receipt message: %v", err)
		return
	}

	topic := xcontext.Configs(ctx).Kafka.Topic
	err = c.publisher.Publish(ctx, topic, &pubsub.Pack{Key: []byte(msg.AttemptID), Msg: b})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot publish receipt of %s to %s: %v", msg.TxHash, topic, err)
	}
}

func (c *controller) Snapshot() State {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	s := c.state
	s.Free = c.state.Free.copy()
	s.Paid = c.state.Paid.copy()
	return s
}

// Close stops observing receipts and refuses further mints. Submitted transactions are not
// affected.
func (c *controller) Close() {
	c.mutex.Lock()
	c.closed = true
	c.mutex.Unlock()

	c.cancel()
	c.wg.Wait()
}
