package service

import "time"

// Poller runs fn on a fixed interval until stopped. Stop only prevents
// further ticks; a call already in flight finishes on its own.
type Poller struct {
	ticker *time.Ticker
	done   chan struct{}
}

func NewPoller(interval time.Duration, fn func()) *Poller {
	p := &Poller{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}
	go func() {
		for {
			select {
			case <-p.ticker.C:
				fn()
			case <-p.done:
				return
			}
		}
	}()
	return p
}

func (p *Poller) Stop() {
	p.ticker.Stop()
	close(p.done)
}
