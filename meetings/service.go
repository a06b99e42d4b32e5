package meetings

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/meinhoongagan/pharmacy-portal/models"
)

var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrNoRoom          = errors.New("meeting has no video room")
	ErrNotJoinable     = errors.New("meeting is not open for joining")
	ErrNotJoined       = errors.New("meeting was not joined")
)

// BookedLister supplies a session's booked appointments in ascending
// start order.
type BookedLister interface {
	Booked(ctx context.Context, sess *models.Session) []models.Appointment
}

// Attendance stores join and leave records.
type Attendance interface {
	Open(ctx context.Context, sessionID, appointmentKey string) (*models.MeetingAttendance, error)
	Create(ctx context.Context, m *models.MeetingAttendance) error
	Save(ctx context.Context, m *models.MeetingAttendance) error
}

// GormAttendance is the database-backed Attendance.
type GormAttendance struct {
	db *gorm.DB
}

func NewGormAttendance(db *gorm.DB) *GormAttendance {
	return &GormAttendance{db: db}
}

// Open returns the attendance that has not been left yet, or nil.
func (r *GormAttendance) Open(ctx context.Context, sessionID, appointmentKey string) (*models.MeetingAttendance, error) {
	var m models.MeetingAttendance
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND appointment_key = ? AND left_at IS NULL", sessionID, appointmentKey).
		Order("joined_at DESC").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *GormAttendance) Create(ctx context.Context, m *models.MeetingAttendance) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *GormAttendance) Save(ctx context.Context, m *models.MeetingAttendance) error {
	return r.db.WithContext(ctx).Save(m).Error
}

// View is one meeting with its eligibility at the time it was built.
type View struct {
	Appointment models.Appointment `json:"appointment"`
	Key         string             `json:"key"`
	IsActive    bool               `json:"isActive"`
	CanJoin     bool               `json:"canJoin"`
	TimeUntil   string             `json:"timeUntil"`
}

// Overview is the meeting summary shown on the dashboard.
type Overview struct {
	Current  *View  `json:"currentActiveMeeting"`
	Next     *View  `json:"nextMeetingStartingSoon"`
	Upcoming []View `json:"upcomingMeetings"`
}

// JoinResult is what a client needs to enter the room.
type JoinResult struct {
	RoomID      string             `json:"roomId"`
	Appointment models.Appointment `json:"appointment"`
	JoinedAt    time.Time          `json:"joinedAt"`
}

type Service struct {
	booked     BookedLister
	attendance Attendance
	lead       time.Duration
	now        func() time.Time
	log        *zap.Logger
}

func NewService(booked BookedLister, attendance Attendance, lead time.Duration, now func() time.Time, log *zap.Logger) *Service {
	if lead <= 0 {
		lead = DefaultLead
	}
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{booked: booked, attendance: attendance, lead: lead, now: now, log: log}
}

func (s *Service) view(a models.Appointment, now time.Time) View {
	return View{
		Appointment: a,
		Key:         a.Key(),
		IsActive:    IsActive(a, now),
		CanJoin:     CanJoinWithin(a, now, s.lead),
		TimeUntil:   TimeUntil(a, now),
	}
}

// Overview builds the current, next and upcoming meetings for a session.
func (s *Service) Overview(ctx context.Context, sess *models.Session) Overview {
	booked := s.booked.Booked(ctx, sess)
	now := s.now()

	o := Overview{Upcoming: make([]View, 0)}
	if a, ok := CurrentActive(booked, now); ok {
		v := s.view(a, now)
		o.Current = &v
	}
	if a, ok := NextStartingSoon(booked); ok {
		v := s.view(a, now)
		o.Next = &v
	}
	for _, a := range Upcoming(booked) {
		o.Upcoming = append(o.Upcoming, s.view(a, now))
	}
	return o
}

func (s *Service) find(ctx context.Context, sess *models.Session, key string) (models.Appointment, error) {
	for _, a := range s.booked.Booked(ctx, sess) {
		if a.Key() == key {
			return a, nil
		}
	}
	return models.Appointment{}, ErrMeetingNotFound
}

// Join checks the join window and records the attendance. Joining a
// meeting that is already open for the session returns the same record.
func (s *Service) Join(ctx context.Context, sess *models.Session, key string) (JoinResult, error) {
	a, err := s.find(ctx, sess, key)
	if err != nil {
		return JoinResult{}, err
	}
	if !a.HasRoom() {
		return JoinResult{}, ErrNoRoom
	}
	now := s.now()
	if !CanJoinWithin(a, now, s.lead) {
		return JoinResult{}, ErrNotJoinable
	}

	open, err := s.attendance.Open(ctx, sess.ID, key)
	if err != nil {
		return JoinResult{}, err
	}
	if open != nil {
		return JoinResult{RoomID: open.RoomID, Appointment: a, JoinedAt: open.JoinedAt}, nil
	}

	m := &models.MeetingAttendance{
		SessionID:      sess.ID,
		AccountID:      sess.AccountID,
		AppointmentKey: key,
		RoomID:         a.RoomID,
		JoinedAt:       now,
	}
	if err := s.attendance.Create(ctx, m); err != nil {
		return JoinResult{}, err
	}

	s.log.Info("meeting joined",
		zap.String("session_id", sess.ID),
		zap.String("appointment", key),
		zap.String("room_id", a.RoomID),
	)
	return JoinResult{RoomID: a.RoomID, Appointment: a, JoinedAt: now}, nil
}

// Leave closes the session's open attendance for the meeting.
func (s *Service) Leave(ctx context.Context, sess *models.Session, key string) (*models.MeetingAttendance, error) {
	open, err := s.attendance.Open(ctx, sess.ID, key)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, ErrNotJoined
	}

	now := s.now()
	open.LeftAt = &now
	if err := s.attendance.Save(ctx, open); err != nil {
		return nil, err
	}

	s.log.Info("meeting left",
		zap.String("session_id", sess.ID),
		zap.String("appointment", key),
		zap.Duration("duration", now.Sub(open.JoinedAt)),
	)
	return open, nil
}
