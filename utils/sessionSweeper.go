package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"sbweb/config"
	"sbweb/notify"
	"sbweb/session"
)

// logSweeper logs sweeper events with timestamp
func logSweeper(message string) {
	log.Printf("[SESSION-SWEEPER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartSessionSweeper purges expired sessions on a fixed schedule and stops
// the badge poller of every purged session. The returned cron is stopped by
// the caller on shutdown.
func StartSessionSweeper(store *session.Store, badges *notify.Registry) *cron.Cron {
	c := cron.New()
	schedule := "@every " + config.AppConfig.SweepInterval.String()
	if _, err := c.AddFunc(schedule, func() {
		sweepSessions(store, badges)
	}); err != nil {
		log.Fatalf("Failed to schedule session sweeper: %v", err)
	}
	c.Start()
	logSweeper("Started with schedule " + schedule)
	return c
}

func sweepSessions(store *session.Store, badges *notify.Registry) {
	ids, err := store.DeleteExpired()
	if err != nil {
		logSweeper("Error deleting expired sessions: " + err.Error())
		return
	}
	for _, id := range ids {
		badges.Remove(id)
	}
	if len(ids) > 0 {
		logSweeper(fmt.Sprintf("Purged %d expired session(s)", len(ids)))
	}
}
