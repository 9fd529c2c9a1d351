// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package observability

import (
	"sync/atomic"
	"time"

	"github.com/qolzam/jobly/internal/pkg/log"
)

// TxMetrics counts transaction outcomes. The zero value is ready to use and
// safe for concurrent use.
type TxMetrics struct {
	active     atomic.Int64
	total      atomic.Int64
	committed  atomic.Int64
	rolledBack atomic.Int64
	failed     atomic.Int64
	duration   atomic.Int64 // nanoseconds over completed transactions
}

// TxStats is a point-in-time copy of TxMetrics.
type TxStats struct {
	Active          int64         `json:"active"`
	Total           int64         `json:"total"`
	Committed       int64         `json:"committed"`
	RolledBack      int64         `json:"rolledBack"`
	Failed          int64         `json:"failed"`
	AverageDuration time.Duration `json:"averageDuration"`
}

// Start records a new transaction and returns its start time.
func (m *TxMetrics) Start() time.Time {
	m.active.Add(1)
	m.total.Add(1)
	return time.Now()
}

// Commit records a committed transaction.
func (m *TxMetrics) Commit(started time.Time) {
	m.finish(started)
	m.committed.Add(1)
	log.Debug("Transaction committed (duration: %v)", time.Since(started))
}

// Rollback records a transaction rolled back because fn returned err.
func (m *TxMetrics) Rollback(started time.Time, err error) {
	m.finish(started)
	m.rolledBack.Add(1)
	log.Debug("Transaction rolled back (duration: %v, error: %v)", time.Since(started), err)
}

// Fail records a transaction whose commit or rollback itself failed.
func (m *TxMetrics) Fail(started time.Time, err error) {
	m.finish(started)
	m.failed.Add(1)
	log.Error("Transaction failed (duration: %v, error: %v)", time.Since(started), err)
}

func (m *TxMetrics) finish(started time.Time) {
	m.active.Add(-1)
	m.duration.Add(int64(time.Since(started)))
}

// Snapshot returns the current counters.
func (m *TxMetrics) Snapshot() TxStats {
	stats := TxStats{
		Active:     m.active.Load(),
		Total:      m.total.Load(),
		Committed:  m.committed.Load(),
		RolledBack: m.rolledBack.Load(),
		Failed:     m.failed.Load(),
	}
	if completed := stats.Committed + stats.RolledBack + stats.Failed; completed > 0 {
		stats.AverageDuration = time.Duration(m.duration.Load() / completed)
	}
	return stats
}
