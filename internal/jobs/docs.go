// Package jobs provides scheduled background sweeps for the fulfillment
// engine, built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
//  1. PricingSweepJob - reruns consolidation for packed shipments that are
//     still unpriced (a consolidation that failed after packing, or a manual
//     quote that a new rule can now price). Consolidation is idempotent, so
//     a sweep that overlaps a live packing request changes nothing twice.
//  2. VoucherExpiryJob - logs unused vouchers about to expire.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewPricingSweepJob(finder, consolidator, "@every 5m", 200, logger),
//		jobs.NewVoucherExpiryJob(lister, "0 6 * * *", 7*24*time.Hour, logger),
//	)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Specs use the standard five cron fields or descriptors such as "@every 5m",
// evaluated in UTC. Both jobs expose Run for a single synchronous pass.
package jobs
