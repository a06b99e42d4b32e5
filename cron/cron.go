package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/meinhoongagan/pharmacy-portal/cache"
	"github.com/meinhoongagan/pharmacy-portal/meetings"
	"github.com/meinhoongagan/pharmacy-portal/models"
	"github.com/meinhoongagan/pharmacy-portal/timezone"
	"github.com/meinhoongagan/pharmacy-portal/utils"
)

// SessionLister lists sessions that have not expired.
type SessionLister interface {
	ListActive(ctx context.Context, now time.Time) ([]models.Session, error)
}

type sessionPurger interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// ZoneProvider resolves the display zone for a session.
type ZoneProvider interface {
	Timezone(ctx context.Context, sess *models.Session) (*timezone.Context, *models.Pharmacy)
}

type Jobs struct {
	Sessions SessionLister
	Meetings meetings.BookedLister
	Zones    ZoneProvider
	Store    cache.Store
	Mailer   utils.Mailer
	Lead     time.Duration
	Now      func() time.Time
	Logger   *zap.Logger
	// Memory is swept of expired entries when the cache is in-process.
	Memory *cache.MemoryStore
}

// Start schedules the jobs and returns the running scheduler.
func Start(j *Jobs) (*cron.Cron, error) {
	if j.Now == nil {
		j.Now = time.Now
	}
	if j.Lead <= 0 {
		j.Lead = meetings.DefaultLead
	}
	if j.Logger == nil {
		j.Logger = zap.NewNop()
	}

	c := cron.New()
	if j.Mailer != nil {
		// Every minute, look for meetings entering their join window.
		if _, err := c.AddFunc("* * * * *", func() { j.RemindMeetings(context.Background()) }); err != nil {
			return nil, fmt.Errorf("add reminder job: %w", err)
		}
	}
	if j.Memory != nil {
		if _, err := c.AddFunc("@every 5m", j.SweepCache); err != nil {
			return nil, fmt.Errorf("add cache sweep job: %w", err)
		}
	}
	if p, ok := j.Sessions.(sessionPurger); ok {
		if _, err := c.AddFunc("@hourly", func() { j.purgeSessions(context.Background(), p) }); err != nil {
			return nil, fmt.Errorf("add session purge job: %w", err)
		}
	}
	c.Start()

	j.Logger.Info("cron scheduler started")
	return c, nil
}

// RemindMeetings emails each signed-in provider once per meeting that has
// entered its join window. It returns how many reminders were sent.
func (j *Jobs) RemindMeetings(ctx context.Context) int {
	now := j.Now()
	sessions, err := j.Sessions.ListActive(ctx, now)
	if err != nil {
		j.Logger.Error("listing sessions for reminders failed", zap.Error(err))
		return 0
	}

	sent := 0
	for i := range sessions {
		sess := &sessions[i]
		if sess.Email == "" {
			continue
		}
		for _, a := range j.Meetings.Booked(ctx, sess) {
			if !a.HasRoom() || !meetings.IsStartingSoon(a, now, j.Lead) {
				continue
			}

			key := "reminder:" + sess.ID + ":" + a.Key() + ":"
			ok, err := j.Store.SetNX(ctx, key, []byte(now.Format(time.RFC3339)), j.Lead+a.EndTime.Sub(a.StartTime))
			if err != nil {
				j.Logger.Warn("reminder dedupe failed", zap.String("key", key), zap.Error(err))
				continue
			}
			if !ok {
				continue
			}

			if err := j.sendReminder(ctx, sess, a, now); err != nil {
				j.Logger.Error("failed to send meeting reminder",
					zap.String("session_id", sess.ID),
					zap.String("appointment", a.Key()),
					zap.Error(err),
				)
				// Let the next run retry.
				_ = j.Store.DeletePrefix(ctx, key)
				continue
			}
			sent++
		}
	}

	if sent > 0 {
		j.Logger.Info("meeting reminders sent", zap.Int("count", sent))
	}
	return sent
}

func (j *Jobs) sendReminder(ctx context.Context, sess *models.Session, a models.Appointment, now time.Time) error {
	tz, _ := j.Zones.Timezone(ctx, sess)
	f := tz.Formatters

	title := "Appointment"
	if a.IsCarePackage {
		title = a.CarePackageName
	}
	subject := fmt.Sprintf("Reminder: %s starts %s", title, meetings.TimeUntil(a, now))
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your meeting is about to start and can be joined now.</p>
		<ul>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>End Time:</strong> %s</li>
			<li><strong>Patient:</strong> %s</li>
		</ul>
		<p>Best regards,</p>
		<p>Your Appointment Team</p>
	`, sess.Name, f.Date(a.StartTime), f.DateTimeWithTz(a.StartTime), f.Time(a.EndTime), a.UserEmail)

	return j.Mailer.Send(sess.Email, subject, body)
}

// SweepCache drops expired in-process cache entries.
func (j *Jobs) SweepCache() {
	if n := j.Memory.Sweep(); n > 0 {
		j.Logger.Debug("cache swept", zap.Int("removed", n))
	}
}

func (j *Jobs) purgeSessions(ctx context.Context, p sessionPurger) {
	n, err := p.DeleteExpired(ctx, j.Now())
	if err != nil {
		j.Logger.Error("expired session purge failed", zap.Error(err))
		return
	}
	if n > 0 {
		j.Logger.Info("expired sessions purged", zap.Int64("count", n))
	}
}
