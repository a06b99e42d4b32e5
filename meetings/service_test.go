package meetings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/meinhoongagan/pharmacy-portal/models"
)

type staticBooked []models.Appointment

func (b staticBooked) Booked(context.Context, *models.Session) []models.Appointment {
	return b
}

type memoryAttendance struct {
	rows []*models.MeetingAttendance
}

func (m *memoryAttendance) Open(_ context.Context, sessionID, key string) (*models.MeetingAttendance, error) {
	for _, r := range m.rows {
		if r.SessionID == sessionID && r.AppointmentKey == key && r.Open() {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memoryAttendance) Create(_ context.Context, r *models.MeetingAttendance) error {
	r.ID = uint(len(m.rows) + 1)
	m.rows = append(m.rows, r)
	return nil
}

func (m *memoryAttendance) Save(context.Context, *models.MeetingAttendance) error {
	return nil
}

var sess = &models.Session{ID: "s1", AccountID: 3}

func newService(booked staticBooked, att *memoryAttendance) *Service {
	return NewService(booked, att, DefaultLead, func() time.Time { return now }, nil)
}

func TestJoinAndLeave(t *testing.T) {
	att := &memoryAttendance{}
	s := newService(staticBooked{meeting(1, now.Add(10*time.Minute), "room-1")}, att)
	ctx := context.Background()

	res, err := s.Join(ctx, sess, "regular:1")
	if err != nil {
		t.Fatal(err)
	}
	if res.RoomID != "room-1" {
		t.Errorf("RoomID = %q", res.RoomID)
	}

	if _, err := s.Join(ctx, sess, "regular:1"); err != nil {
		t.Fatal(err)
	}
	if len(att.rows) != 1 {
		t.Errorf("rejoin created %d rows, want 1", len(att.rows))
	}

	left, err := s.Leave(ctx, sess, "regular:1")
	if err != nil {
		t.Fatal(err)
	}
	if left.LeftAt == nil || !left.LeftAt.Equal(now) {
		t.Errorf("LeftAt = %v", left.LeftAt)
	}
	if _, err := s.Leave(ctx, sess, "regular:1"); !errors.Is(err, ErrNotJoined) {
		t.Errorf("second leave err = %v, want ErrNotJoined", err)
	}
}

func TestJoinErrors(t *testing.T) {
	booked := staticBooked{
		meeting(1, now.Add(10*time.Minute), ""),
		meeting(2, now.Add(2*time.Hour), "room"),
	}
	s := newService(booked, &memoryAttendance{})
	ctx := context.Background()

	tests := []struct {
		key  string
		want error
	}{
		{"regular:1", ErrNoRoom},
		{"regular:2", ErrNotJoinable},
		{"care:1", ErrMeetingNotFound},
	}
	for _, tt := range tests {
		if _, err := s.Join(ctx, sess, tt.key); !errors.Is(err, tt.want) {
			t.Errorf("Join(%s) err = %v, want %v", tt.key, err, tt.want)
		}
	}
}

func TestOverview(t *testing.T) {
	booked := staticBooked{
		meeting(1, now.Add(-10*time.Minute), "room-a"),
		meeting(2, now.Add(5*time.Hour), "room-b"),
	}
	o := newService(booked, &memoryAttendance{}).Overview(context.Background(), sess)

	if o.Current == nil || o.Current.Appointment.ID != 1 || !o.Current.CanJoin {
		t.Errorf("Current = %+v", o.Current)
	}
	if o.Next == nil || o.Next.Key != "regular:1" {
		t.Errorf("Next = %+v", o.Next)
	}
	if len(o.Upcoming) != 2 || o.Upcoming[1].TimeUntil != "in 5 hours 0min" {
		t.Errorf("Upcoming = %+v", o.Upcoming)
	}
}
