package service

import (
	"context"
	"time"

	"reward-indexer/internal/core/domain"
	"reward-indexer/internal/core/ports"

	"github.com/shopspring/decimal"
)

const healthCheckTimeout = 2 * time.Second

// reportingService implements ports.ReportingService.
type reportingService struct {
	ledger   ports.Ledger
	probe    ports.ReadinessProbe
	checkers []ports.HealthChecker
	decimals int32
}

// NewReportingService creates the read-side service. checkers are optional
// dependencies (Redis, Postgres) whose failure degrades health.
func NewReportingService(
	ledger ports.Ledger,
	probe ports.ReadinessProbe,
	decimals int32,
	checkers ...ports.HealthChecker,
) ports.ReportingService {
	return &reportingService{
		ledger:   ledger,
		probe:    probe,
		checkers: checkers,
		decimals: decimals,
	}
}

// Leaderboard returns all balances sorted by amount descending, in display units.
func (s *reportingService) Leaderboard() []ports.LeaderboardEntry {
	sorted := s.ledger.Snapshot().Sorted()

	out := make([]ports.LeaderboardEntry, len(sorted))
	for i, b := range sorted {
		out[i] = ports.LeaderboardEntry{
			Address: b.Address,
			Amount:  domain.ToDisplay(b.Amount, s.decimals),
		}
	}
	return out
}

// Total returns the sum of all balances in display units.
func (s *reportingService) Total() decimal.Decimal {
	return domain.ToDisplay(s.ledger.TotalCredited(), s.decimals)
}

// Health reports starting until the seed is loaded and the subscription has
// come up once, and ok from then on. A failing dependency reports degraded.
func (s *reportingService) Health(ctx context.Context) ports.HealthReport {
	report := ports.HealthReport{
		Status:       domain.HealthOK,
		Subscription: s.probe.State(),
		Checks:       make(map[string]string, len(s.checkers)),
	}

	if !s.ledger.Seeded() || !s.probe.Ready() {
		report.Status = domain.HealthStarting
		return report
	}

	// Reconnects after the first subscription do not change the status;
	// only dependency checks can degrade it.
	for _, c := range s.checkers {
		cctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
		err := c.Ping(cctx)
		cancel()

		if err != nil {
			report.Checks[c.Name()] = err.Error()
			report.Status = domain.HealthDegraded
			continue
		}
		report.Checks[c.Name()] = "ok"
	}

	return report
}
