package live

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"nocturna/internal/model"
)

// CountSource reads the current headcount.
type CountSource interface {
	Current(ctx context.Context) (*model.HeadCount, error)
}

// Poller re-reads the headcount on an interval and publishes it, so stream
// clients stay in sync even when the count was changed by another process.
type Poller struct {
	source   CountSource
	hub      *Hub
	interval time.Duration
	log      *logrus.Logger

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// NewPoller creates a poller; call Start to run it.
func NewPoller(source CountSource, hub *Hub, interval time.Duration, log *logrus.Logger) *Poller {
	return &Poller{
		source:   source,
		hub:      hub,
		interval: interval,
		log:      log,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the polling goroutine.
func (p *Poller) Start() {
	go func() {
		defer close(p.done)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				p.Tick(context.Background())
			case <-p.stop:
				return
			}
		}
	}()
}

// Stop halts the goroutine and waits for it to exit.
func (p *Poller) Stop() {
	p.once.Do(func() {
		close(p.stop)
		<-p.done
	})
}

// Tick performs one poll. Skipped entirely while nobody is listening.
func (p *Poller) Tick(ctx context.Context) {
	if p.hub.Len() == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	hc, err := p.source.Current(ctx)
	if err != nil {
		p.log.WithError(err).Warn("headcount poll failed")
		return
	}
	p.hub.Publish(CountEvent(hc))
}

// CountEvent wraps a headcount row in a stream event.
func CountEvent(hc *model.HeadCount) Event {
	now := time.Now()
	return Event{
		Type: EventHeadCount,
		Data: CountMessage{Count: hc.Count, Timestamp: now},
		At:   now,
	}
}
