package user

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/streakquiz/backend/internal/apperrors"
)

var ctx = context.Background()

const highscoresCacheKey = "highscores"
const highscoresCacheTTL = 30 * time.Second

type UserRepository interface {
	CreateUser(username string) (*User, error)
	GetUser(id int) (*User, error)
	GetUserByUsername(username string) (*User, error)
	// MutateUser runs a row-locked read-modify-write: the user row is
	// loaded under SELECT ... FOR UPDATE, mutate is applied, and the
	// counters are written back in the same transaction.
	MutateUser(id int, mutate func(u *User) error) (*User, error)
	Highscores() ([]HighScoreEntry, error)
}

type GormUserRepository struct {
	db  *gorm.DB
	rdb *redis.Client
}

// NewGormUserRepository builds the Postgres-backed store. rdb may be nil,
// in which case the high score cache is skipped.
func NewGormUserRepository(db *gorm.DB, rdb *redis.Client) *GormUserRepository {
	return &GormUserRepository{db: db, rdb: rdb}
}

func (r *GormUserRepository) CreateUser(username string) (*User, error) {
	newUser := User{Username: username}
	if err := r.db.Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewAppError(http.StatusConflict, "username already registered", err)
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error creating user", err)
	}

	r.invalidateHighscores()
	return &newUser, nil
}

func (r *GormUserRepository) GetUser(id int) (*User, error) {
	var u User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(http.StatusNotFound, "user not found", err)
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error getting user", err)
	}

	return &u, nil
}

func (r *GormUserRepository) GetUserByUsername(username string) (*User, error) {
	var u User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(http.StatusNotFound, "user not found", err)
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error getting user", err)
	}

	return &u, nil
}

func (r *GormUserRepository) MutateUser(id int, mutate func(u *User) error) (*User, error) {
	var u User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&u, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewAppError(http.StatusNotFound, "user not found", err)
			}
			return err
		}

		if err := mutate(&u); err != nil {
			return err
		}

		return tx.Model(&User{}).Where("id = ?", u.ID).Updates(map[string]interface{}{
			"games_played":  u.GamesPlayed,
			"high_score":    u.HighScore,
			"current_score": u.CurrentScore,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	r.invalidateHighscores()
	return &u, nil
}

func (r *GormUserRepository) Highscores() ([]HighScoreEntry, error) {
	if r.rdb != nil {
		if val, err := r.rdb.Get(ctx, highscoresCacheKey).Result(); err == nil {
			cached := []HighScoreEntry{}
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	entries := []HighScoreEntry{}
	if err := r.db.Model(&User{}).
		Select("username", "high_score").
		Order("high_score DESC, id ASC").
		Scan(&entries).Error; err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error listing high scores", err)
	}

	if r.rdb != nil {
		data, err := json.Marshal(entries)
		if err == nil {
			if err := r.rdb.Set(ctx, highscoresCacheKey, data, highscoresCacheTTL).Err(); err != nil {
				log.Println("error caching high scores:", err)
			}
		}
	}

	return entries, nil
}

func (r *GormUserRepository) invalidateHighscores() {
	if r.rdb == nil {
		return
	}
	if err := r.rdb.Del(ctx, highscoresCacheKey).Err(); err != nil {
		log.Println("error invalidating high score cache:", err)
	}
}
