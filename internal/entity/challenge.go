package entity

import "time"

// Challenge is a pending proposal to play. Rematches share the type.
type Challenge struct {
	ID             string    `json:"id"`
	ChallengerID   string    `json:"challenger_id"`
	ChallengerName string    `json:"challenger_name"`
	TargetID       string    `json:"target_id"`
	TargetName     string    `json:"target_name"`
	BoardSize      int       `json:"board_size"`
	CreatedAt      time.Time `json:"created_at"`
	Rematch        bool      `json:"rematch,omitempty"`
}

// IsExpired - a zero ttl never expires.
func (that *Challenge) IsExpired(now time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return !now.Before(that.CreatedAt.Add(ttl))
}
