package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

type ExpiringVoucherLister interface {
	Handle(ctx context.Context, query queries.ListExpiringVouchersQuery) ([]queries.ExpiringVoucherView, error)
}

// VoucherExpiryJob logs unused vouchers that expire within the look-ahead
// window so sales can follow up before they lapse.
type VoucherExpiryJob struct {
	lister ExpiringVoucherLister
	ahead  time.Duration
	spec   string
	now    func() time.Time
	cron   *cron.Cron
	logger *slog.Logger
}

func NewVoucherExpiryJob(
	lister ExpiringVoucherLister,
	spec string,
	ahead time.Duration,
	logger *slog.Logger,
) *VoucherExpiryJob {
	return &VoucherExpiryJob{
		lister: lister,
		ahead:  ahead,
		spec:   spec,
		now:    time.Now,
		cron:   newCron(),
		logger: logger.With("component", "voucher_expiry_job"),
	}
}

func (j *VoucherExpiryJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "voucher expiry sweep failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "voucher expiry job started", "spec", j.spec, "ahead", j.ahead)
	return nil
}

func (j *VoucherExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "voucher expiry job stopped")
}

// Run logs every expiring voucher and returns how many there were.
func (j *VoucherExpiryJob) Run(ctx context.Context) (int, error) {
	query, err := queries.NewListExpiringVouchersQuery(j.now(), j.ahead)
	if err != nil {
		return 0, err
	}

	vouchers, err := j.lister.Handle(ctx, query)
	if err != nil {
		return 0, err
	}

	for _, v := range vouchers {
		j.logger.InfoContext(ctx, "voucher expires soon",
			"code", v.Code,
			"amount_eur", v.AmountEur.StringFixed(2),
			"expires_at", v.ExpiresAt.Format(time.RFC3339),
		)
	}
	return len(vouchers), nil
}
