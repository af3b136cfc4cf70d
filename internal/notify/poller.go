package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/entities"
	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/session"
	"github.com/Stranger-app-team/stranger-vendor-dashboard/pkg/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var customerAlerts = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "vendor_dashboard",
	Subsystem: "notify",
	Name:      "customer_alerts",
	Help:      "Number of offline-or-no-camera customers in the latest poll.",
})

type API interface {
	OfflineOrNoCameraCustomers(ctx context.Context, date string) ([]entities.Customer, error)
	AcceptedOrders(ctx context.Context, vendorID string) ([]entities.OrderSummary, error)
}

// Snapshot is the latest poll result.
type Snapshot struct {
	Customers     []entities.Customer
	AcceptedCount int
	FetchedAt     time.Time
}

// Poller periodically refreshes customer alerts and the accepted-order
// count. It is an explicitly started and stopped task, so the ticker's
// lifetime is tied to the hosting application rather than leaked.
type Poller struct {
	logger   *slog.Logger
	api      API
	sess     *session.Context
	interval time.Duration

	mu   sync.RWMutex
	snap Snapshot

	cancel context.CancelFunc
	done   chan struct{}
}

func New(logger *slog.Logger, api API, sess *session.Context, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Poller{
		logger:   logger.With(slog.String("component", "notify")),
		api:      api,
		sess:     sess,
		interval: interval,
	}
}

// Start launches the polling loop. The first poll happens immediately.
func (p *Poller) Start(ctx context.Context) error {
	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		p.poll(ctx)
		for {
			select {
			case <-ticker.C:
				p.poll(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

// Stop cancels the loop and waits for it to exit. Safe to call more than
// once and before Start.
func (p *Poller) Stop() error {
	if p.cancel == nil {
		return nil
	}
	p.cancel()
	<-p.done
	p.cancel = nil
	return nil
}

// Snapshot returns the latest poll result.
func (p *Poller) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snap
}

func (p *Poller) poll(ctx context.Context) {
	date := time.Now().Format("2006-01-02")

	var customers []entities.Customer
	err := utils.Retry(utils.RetryConfig{MaxAttempts: 3, InitialDelay: time.Second}, func() error {
		var err error
		customers, err = p.api.OfflineOrNoCameraCustomers(ctx, date)
		return err
	})
	if err != nil {
		p.logger.Error("failed to fetch customer alerts", slog.Any("error", err))
		return
	}

	accepted := 0
	if vendor, ok := p.sess.Vendor(); ok {
		orders, err := p.api.AcceptedOrders(ctx, vendor.ID)
		if err != nil {
			p.logger.Error("failed to fetch accepted orders", slog.Any("error", err))
		} else {
			accepted = len(orders)
		}
	}

	p.mu.Lock()
	p.snap = Snapshot{
		Customers:     customers,
		AcceptedCount: accepted,
		FetchedAt:     time.Now(),
	}
	p.mu.Unlock()

	customerAlerts.Set(float64(len(customers)))
	p.logger.Debug("poll complete",
		slog.Int("customers", len(customers)),
		slog.Int("accepted_orders", accepted),
	)
}
