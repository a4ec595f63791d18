package cleanup

import (
	"log"
	"time"
)

// Scheduler runs the janitor on an interval
type Scheduler struct {
	Janitor       *Janitor
	ticker        *time.Ticker
	done          chan bool
	stopChan      chan bool
	SweepInterval time.Duration
}

// NewScheduler creates a new cleanup scheduler
func NewScheduler(janitor *Janitor) *Scheduler {
	return &Scheduler{
		Janitor:       janitor,
		SweepInterval: 24 * time.Hour, // Default: daily
		done:          make(chan bool, 1),
		stopChan:      make(chan bool, 1),
	}
}

// Start begins the cleanup scheduler in a goroutine
// Returns a done channel that will be closed when scheduler stops
func (s *Scheduler) Start() chan bool {
	go func() {
		s.ticker = time.NewTicker(s.SweepInterval)
		defer s.ticker.Stop()

		// Run initial sweep immediately
		if removed, err := s.Janitor.Sweep(); err != nil {
			log.Printf("initial cleanup sweep failed: %v", err)
		} else if removed > 0 {
			log.Printf("cleanup removed %d abandoned drafts", removed)
		}

		for {
			select {
			case <-s.stopChan:
				s.done <- true
				return
			case <-s.ticker.C:
				if removed, err := s.Janitor.Sweep(); err != nil {
					log.Printf("scheduled cleanup sweep failed: %v", err)
				} else if removed > 0 {
					log.Printf("cleanup removed %d abandoned drafts", removed)
				}
			}
		}
	}()

	return s.done
}

// Stop stops the cleanup scheduler
func (s *Scheduler) Stop() {
	select {
	case s.stopChan <- true:
	default:
	}
}

// SetInterval sets the sweep interval for testing
func (s *Scheduler) SetInterval(interval time.Duration) {
	s.SweepInterval = interval
}
