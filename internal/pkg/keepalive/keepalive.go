// Package keepalive periodically writes to the database so a hosted
// free-tier instance is never idle long enough to be paused.
package keepalive

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Heartbeat rows carry no business meaning. Only the write itself matters.
type Heartbeat struct {
	ID        uint      `gorm:"primaryKey"`
	PingedAt  time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName overrides the table name
func (Heartbeat) TableName() string {
	return "keep_alive"
}

// Pinger owns the heartbeat loop
type Pinger struct {
	db       *gorm.DB
	interval time.Duration
	logger   *logrus.Logger
}

// NewPinger creates a heartbeat pinger. Intervals below one minute are
// clamped so a misconfigured env var cannot hammer the database.
func NewPinger(db *gorm.DB, interval time.Duration, logger *logrus.Logger) *Pinger {
	if interval < time.Minute {
		interval = time.Minute
	}
	return &Pinger{
		db:       db,
		interval: interval,
		logger:   logger,
	}
}

// Run pings immediately, then on every interval tick until ctx is done
func (p *Pinger) Run(ctx context.Context) {
	p.ping(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.ping(ctx)
		}
	}
}

// ping inserts a heartbeat row and prunes older ones so the table stays
// a handful of rows forever.
func (p *Pinger) ping(ctx context.Context) {
	now := time.Now().UTC()

	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&Heartbeat{PingedAt: now}).Error; err != nil {
			return err
		}
		return tx.Where("pinged_at < ?", now.Add(-30*24*time.Hour)).Delete(&Heartbeat{}).Error
	})
	if err != nil {
		p.logger.WithError(err).Warn("Database heartbeat failed")
		return
	}

	p.logger.WithField("pinged_at", now).Debug("Database heartbeat written")
}
