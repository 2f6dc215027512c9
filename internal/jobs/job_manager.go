package jobs

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

type job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	pricingSweep  *PricingSweepJob
	voucherExpiry *VoucherExpiryJob
}

func NewJobManager(pricingSweep *PricingSweepJob, voucherExpiry *VoucherExpiryJob) *JobManager {
	return &JobManager{
		pricingSweep:  pricingSweep,
		voucherExpiry: voucherExpiry,
	}
}

// StartAll starts all scheduled jobs. If one fails to start, the jobs
// already running are stopped again.
func (jm *JobManager) StartAll() error {
	started := make([]job, 0, 2)
	for _, j := range []struct {
		name string
		job  job
	}{
		{"pricing sweep", jm.pricingSweep},
		{"voucher expiry", jm.voucherExpiry},
	} {
		if err := j.job.Start(); err != nil {
			for _, s := range started {
				s.Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", j.name, err)
		}
		started = append(started, j.job)
	}
	return nil
}

// StopAll stops all scheduled jobs and waits for running sweeps to finish.
func (jm *JobManager) StopAll() {
	jm.pricingSweep.Stop()
	jm.voucherExpiry.Stop()
}

// newCron schedules in UTC with standard five-field specs and descriptors.
// A sweep still running when its next tick fires is skipped.
func newCron() *cron.Cron {
	return cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
}
