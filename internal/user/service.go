package user

import (
	"errors"
	"net/http"

	"github.com/streakquiz/backend/internal/apperrors"
	"github.com/streakquiz/backend/internal/game"
)

// scoreUpdateRetries bounds the internal retry of a score update on
// transient store failures. Coded failures (NotFound, Conflict) are
// never retried.
const scoreUpdateRetries = 3

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) CreateUser(username string) (*User, error) {
	if username == "" {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "username is required", nil)
	}

	return s.repo.CreateUser(username)
}

// Login resolves an existing account by username. There is no credential
// check; identity is asserted by the username alone.
func (s *UserService) Login(username string) (*User, error) {
	if username == "" {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "username is required", nil)
	}

	return s.repo.GetUserByUsername(username)
}

func (s *UserService) GetUser(id int) (*User, error) {
	return s.repo.GetUser(id)
}

func (s *UserService) GetUserByUsername(username string) (*User, error) {
	return s.repo.GetUserByUsername(username)
}

// OverwriteStats is the administrative correction path: it replaces
// gamesPlayed and highScore wholesale, leaving the running streak alone.
func (s *UserService) OverwriteStats(id int, update *UserUpdateRequest) (*User, error) {
	if update.GamesPlayed < 0 || update.HighScore < 0 {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "counters must be non-negative", nil)
	}

	return s.repo.MutateUser(id, func(u *User) error {
		u.GamesPlayed = update.GamesPlayed
		u.HighScore = update.HighScore
		return nil
	})
}

// UpdateScore applies one answer to the user's game state. The whole
// read-modify-write runs under the repository's row lock, so concurrent
// calls for the same user serialize while other users proceed untouched.
// The returned snapshot reports the pre-reset streak on a win.
func (s *UserService) UpdateScore(id int, correct bool) (*ScoreResponse, error) {
	var resp *ScoreResponse
	mutate := func(u *User) error {
		out := game.Apply(game.State{
			GamesPlayed:  u.GamesPlayed,
			HighScore:    u.HighScore,
			CurrentScore: u.CurrentScore,
		}, correct)

		resp = &ScoreResponse{
			ID:           u.ID,
			Username:     u.Username,
			GamesPlayed:  out.Reported.GamesPlayed,
			HighScore:    out.Reported.HighScore,
			CurrentScore: out.Reported.CurrentScore,
			GameWon:      out.GameWon,
		}

		u.GamesPlayed = out.Persisted.GamesPlayed
		u.HighScore = out.Persisted.HighScore
		u.CurrentScore = out.Persisted.CurrentScore
		return nil
	}

	var err error
	for attempt := 0; attempt < scoreUpdateRetries; attempt++ {
		if _, err = s.repo.MutateUser(id, mutate); err == nil {
			return resp, nil
		}

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
	}

	return nil, apperrors.NewAppError(http.StatusInternalServerError, "error updating score", err)
}

func (s *UserService) Highscores() ([]HighScoreEntry, error) {
	return s.repo.Highscores()
}
