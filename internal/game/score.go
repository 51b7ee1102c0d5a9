package game

// WinThreshold is the streak length that ends a round in a win.
const WinThreshold = 10

// State holds the per-user counters the score transition operates on.
type State struct {
	GamesPlayed  int
	HighScore    int
	CurrentScore int
}

// Outcome of answering one question. Persisted is what goes back to the
// store, Reported is what the client sees. The two differ only on a win:
// the response shows the full streak while the stored streak is already
// reset to 0.
type Outcome struct {
	Persisted State
	Reported  State
	GameWon   bool
}

// Apply computes the next game state for a single answer.
//
// A correct answer extends the streak; reaching WinThreshold wins the
// round, folds the streak into the high score and resets it. An incorrect
// answer ends the streak, folding whatever accumulated into the high
// score even if it never reached the threshold. GamesPlayed advances by
// one on every call regardless of outcome.
func Apply(s State, correct bool) Outcome {
	next := s
	won := false

	if correct {
		next.CurrentScore++
		if next.CurrentScore >= WinThreshold {
			won = true
			next.HighScore = max(next.HighScore, next.CurrentScore)
		}
	} else {
		next.HighScore = max(next.HighScore, next.CurrentScore)
	}
	next.GamesPlayed++

	out := Outcome{
		Persisted: next,
		Reported:  next,
		GameWon:   won,
	}
	if won || !correct {
		out.Persisted.CurrentScore = 0
	}
	if !correct {
		out.Reported.CurrentScore = 0
	}
	return out
}
