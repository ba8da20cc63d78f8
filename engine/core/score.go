package core

// Scoreboard tracks the running score and how often the player was hit.
// The score only grows.
type Scoreboard struct {
	Score int
	Hits  int
}

// AddScore adds points; negative amounts are ignored
func (s *Scoreboard) AddScore(points int) {
	if points <= 0 {
		return
	}
	s.Score += points
}

// AddHit records one hit on the player
func (s *Scoreboard) AddHit() {
	s.Hits++
}
