package entity

import "time"

// Friendship is an unordered pair of user ids. The remote service may return
// the current user on either side of the pair.
type Friendship struct {
	UserID    int
	FriendID  int
	CreatedAt time.Time
}

// Counterparty returns the other endpoint of the pair relative to userID.
func (f Friendship) Counterparty(userID int) int {
	if f.UserID == userID {
		return f.FriendID
	}

	return f.UserID
}

// ResolveFriendIDs reduces friendship rows to the distinct set of friend ids
// for userID. Each counterparty appears exactly once regardless of which side
// of the row it is on, and userID itself is never included.
func ResolveFriendIDs(rows []Friendship, userID int) []int {
	seen := make(map[int]struct{}, len(rows))
	ids := make([]int, 0, len(rows))
	for _, row := range rows {
		id := row.Counterparty(userID)
		if id == userID {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids
}
