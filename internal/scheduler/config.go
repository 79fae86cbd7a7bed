package scheduler

import "time"

// Config controls the reminder scan cadence and window.
type Config struct {
	RunInterval time.Duration
	JobTimeout  time.Duration
	BatchSize   int
	LockTTL     time.Duration

	// ReminderAfter is how long after a job card closes that the
	// service reminder goes out. ReminderWindow is how far past that
	// point a card is still eligible; beyond it the card ages out.
	ReminderAfter  time.Duration
	ReminderWindow time.Duration
}

func DefaultConfig() Config {
	return Config{
		RunInterval:    24 * time.Hour,
		JobTimeout:     5 * time.Minute,
		BatchSize:      100,
		LockTTL:        10 * time.Minute,
		ReminderAfter:  180 * 24 * time.Hour,
		ReminderWindow: 24 * time.Hour,
	}
}

func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.RunInterval <= 0 {
		c.RunInterval = defaults.RunInterval
	}
	if c.JobTimeout <= 0 {
		c.JobTimeout = defaults.JobTimeout
	}
	if c.BatchSize <= 0 {
		c.BatchSize = defaults.BatchSize
	}
	if c.LockTTL <= 0 {
		c.LockTTL = defaults.LockTTL
	}
	if c.ReminderAfter <= 0 {
		c.ReminderAfter = defaults.ReminderAfter
	}
	if c.ReminderWindow <= 0 {
		c.ReminderWindow = defaults.ReminderWindow
	}
	return c
}
