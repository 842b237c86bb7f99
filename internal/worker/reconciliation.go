package worker

import (
	"context"
	"log"
	"time"

	"github.com/seuristic/image-ecommerce/internal/gateway"
	"github.com/seuristic/image-ecommerce/internal/repository"
)

// PaymentCompleter applies the pending -> completed transition plus the
// owner notification; satisfied by the order service.
type PaymentCompleter interface {
	HandlePaymentCaptured(ctx context.Context, gatewayOrderID string, capturedAmount int64) error
}

// ReconciliationWorker sweeps pending orders that never saw a webhook:
// either the callback was lost after the buyer paid, or checkout was
// abandoned and the gateway order expired. The gateway is the source of
// truth for which of the two happened.
type ReconciliationWorker struct {
	orders    repository.OrderRepository
	gateway   gateway.PaymentGateway
	completer PaymentCompleter
	interval  time.Duration
	minAge    time.Duration
	expiry    time.Duration
}

func NewReconciliationWorker(
	orders repository.OrderRepository,
	gw gateway.PaymentGateway,
	completer PaymentCompleter,
	interval, minAge, expiry time.Duration,
) *ReconciliationWorker {
	return &ReconciliationWorker{
		orders:    orders,
		gateway:   gw,
		completer: completer,
		interval:  interval,
		minAge:    minAge,
		expiry:    expiry,
	}
}

func (w *ReconciliationWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.Println("reconciliation worker started")

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.process(ctx); err != nil {
				log.Printf("reconciliation failed: %v", err)
			}
		}
	}
}

func (w *ReconciliationWorker) process(ctx context.Context) error {
	stuck, err := w.orders.FindPendingOlderThan(ctx, w.minAge)
	if err != nil {
		return err
	}

	for _, order := range stuck {
		state, err := w.gateway.FetchOrderState(ctx, order.GatewayOrderID)
		if err != nil {
			log.Printf("reconciliation: state fetch for order %s failed: %v", order.ID, err)
			continue // leave it for the next sweep
		}

		switch {
		case state == gateway.StatePaid:
			// Lost webhook: apply the same transition the callback would
			// have, notification included.
			if err := w.completer.HandlePaymentCaptured(ctx, order.GatewayOrderID, order.Amount); err != nil {
				log.Printf("reconciliation: completing order %s failed: %v", order.ID, err)
				continue
			}
			log.Printf("reconciliation: order %s was paid but never confirmed, completed", order.ID)
		case time.Since(order.CreatedAt) > w.expiry:
			if err := w.orders.MarkFailed(ctx, order.ID); err != nil {
				log.Printf("reconciliation: failing order %s failed: %v", order.ID, err)
				continue
			}
			log.Printf("reconciliation: order %s abandoned, marked failed", order.ID)
		}
	}

	return nil
}
