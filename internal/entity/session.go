package entity

import "time"

// Session is one player's run at a grid.
type Session struct {
	ID        string     `json:"id"`
	Grid      *Grid      `json:"grid_data"`
	Picks     PickRecord `json:"user_picks"`
	CreatedAt time.Time  `json:"created_at"`
}

func NewSession(id string, grid *Grid, now time.Time) *Session {
	return &Session{
		ID:        id,
		Grid:      grid,
		Picks:     PickRecord{},
		CreatedAt: now.UTC(),
	}
}

func (that *Session) CellsFilled() int {
	return len(that.Picks)
}

func (that *Session) IsComplete() bool {
	return that.Picks.IsComplete()
}

// HasGrid reports whether the session was initialised with a grid.
func (that *Session) HasGrid() bool {
	return that.Grid != nil
}
