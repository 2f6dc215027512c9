package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

type AwaitingPricingFinder interface {
	Handle(ctx context.Context, query queries.GetShipmentsAwaitingPricingQuery) ([]kernel.UUID, error)
}

type ShipmentConsolidator interface {
	Handle(ctx context.Context, cmd commands.ConsolidateShipmentCommand) (commands.ConsolidateShipmentResult, error)
}

// SweepReport summarizes one pricing sweep.
type SweepReport struct {
	Checked int
	Priced  int
	Failed  int
}

// PricingSweepJob reruns consolidation for shipments that are packed but
// still unpriced. It picks up consolidations that failed after packing and
// manual-quote shipments a newer rule can now price.
type PricingSweepJob struct {
	finder       AwaitingPricingFinder
	consolidator ShipmentConsolidator
	limit        int
	spec         string
	cron         *cron.Cron
	logger       *slog.Logger
}

func NewPricingSweepJob(
	finder AwaitingPricingFinder,
	consolidator ShipmentConsolidator,
	spec string,
	limit int,
	logger *slog.Logger,
) *PricingSweepJob {
	return &PricingSweepJob{
		finder:       finder,
		consolidator: consolidator,
		limit:        limit,
		spec:         spec,
		cron:         newCron(),
		logger:       logger.With("component", "pricing_sweep_job"),
	}
}

func (j *PricingSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "pricing sweep failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "pricing sweep job started", "spec", j.spec, "limit", j.limit)
	return nil
}

func (j *PricingSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "pricing sweep job stopped")
}

// Run performs one sweep. A failing shipment is logged and skipped; only a
// failed lookup is returned.
func (j *PricingSweepJob) Run(ctx context.Context) (SweepReport, error) {
	query, err := queries.NewGetShipmentsAwaitingPricingQuery(j.limit)
	if err != nil {
		return SweepReport{}, err
	}

	ids, err := j.finder.Handle(ctx, query)
	if err != nil {
		return SweepReport{}, err
	}

	report := SweepReport{Checked: len(ids)}
	for _, id := range ids {
		cmd, err := commands.NewConsolidateShipmentCommand(id)
		if err != nil {
			return report, err
		}

		result, err := j.consolidator.Handle(ctx, cmd)
		if err != nil {
			report.Failed++
			j.logger.WarnContext(ctx, "shipment consolidation failed", "shipment_id", id.String(), "error", err)
			continue
		}
		if result.PriceEur != nil {
			report.Priced++
		}
	}

	if report.Checked > 0 {
		j.logger.InfoContext(ctx, "pricing sweep finished",
			"checked", report.Checked, "priced", report.Priced, "failed", report.Failed)
	}
	return report, nil
}
