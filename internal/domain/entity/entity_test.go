package entity

import (
	"testing"
	"time"
)

func TestResolveFriendIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rows   []Friendship
		userID int
		want   []int
	}{
		{
			name:   "empty rows",
			userID: 3,
			want:   []int{},
		},
		{
			name: "counterparty on either side",
			rows: []Friendship{
				{UserID: 3, FriendID: 7},
				{UserID: 8, FriendID: 3},
			},
			userID: 3,
			want:   []int{7, 8},
		},
		{
			name: "duplicate counterparty collapses",
			rows: []Friendship{
				{UserID: 3, FriendID: 7},
				{UserID: 7, FriendID: 3},
			},
			userID: 3,
			want:   []int{7},
		},
		{
			name: "self row excluded",
			rows: []Friendship{
				{UserID: 3, FriendID: 3},
				{UserID: 3, FriendID: 9},
			},
			userID: 3,
			want:   []int{9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ResolveFriendIDs(tt.rows, tt.userID)
			if len(got) != len(tt.want) {
				t.Fatalf("ResolveFriendIDs() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("ResolveFriendIDs() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestParseInviteStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   InviteStatus
		wantOK bool
	}{
		{in: "Pending", want: InviteStatusPending, wantOK: true},
		{in: "ACCEPTED", want: InviteStatusAccepted, wantOK: true},
		{in: "declined", want: InviteStatusDeclined, wantOK: true},
		{in: "Rejected", want: InviteStatusDeclined, wantOK: true},
		{in: " accepted ", want: InviteStatusAccepted, wantOK: true},
		{in: "maybe", wantOK: false},
		{in: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseInviteStatus(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseInviteStatus(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Fatalf("ParseInviteStatus(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSortSchedule(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	list := []ScheduledActivity{
		{ID: 1, ScheduledAt: base.Add(2 * time.Hour)},
		{ID: 2, ScheduledAt: base},
		{ID: 3, ScheduledAt: base.Add(time.Hour)},
	}

	SortSchedule(list)

	want := []int{2, 3, 1}
	for i, sa := range list {
		if sa.ID != want[i] {
			t.Fatalf("SortSchedule order = %v, want %v", list, want)
		}
	}
}

func TestActivityEstimatedDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     string
		want   time.Duration
		wantOK bool
	}{
		{name: "hours minutes seconds", in: "1:30:00", want: 90 * time.Minute, wantOK: true},
		{name: "zero hours", in: "0:45:30", want: 45*time.Minute + 30*time.Second, wantOK: true},
		{name: "empty", in: "", wantOK: false},
		{name: "malformed", in: "soon", wantOK: false},
		{name: "minutes out of range", in: "1:75:00", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Activity{EstimatedTime: tt.in}.EstimatedDuration()
			if ok != tt.wantOK {
				t.Fatalf("EstimatedDuration(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Fatalf("EstimatedDuration(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestUserAvailabilityWeekday(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   time.Weekday
		wantOK bool
	}{
		{in: "Monday", want: time.Monday, wantOK: true},
		{in: "saturday", want: time.Saturday, wantOK: true},
		{in: " Sunday ", want: time.Sunday, wantOK: true},
		{in: "Someday", wantOK: false},
		{in: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, ok := UserAvailability{DayOfWeek: tt.in}.Weekday()
			if ok != tt.wantOK {
				t.Fatalf("Weekday(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Fatalf("Weekday(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPreferenceDayNumbers(t *testing.T) {
	t.Parallel()

	pref := UserActivityPreference{DaysOfWeek: "1, 3,5,bad"}
	got := pref.DayNumbers()
	want := []int{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("DayNumbers() = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("DayNumbers() = %v, want %v", got, want)
		}
	}

	if joined := JoinDayNumbers(want); joined != "1,3,5" {
		t.Fatalf("JoinDayNumbers(%v) = %q, want %q", want, joined, "1,3,5")
	}
}
