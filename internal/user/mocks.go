package user

import (
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(username string) (*User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) GetUser(id int) (*User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(username string) (*User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

// MutateUser runs the callback against the configured user, mirroring the
// real repository's read-modify-write.
func (m *MockUserRepository) MutateUser(id int, mutate func(u *User) error) (*User, error) {
	args := m.Called(id, mutate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	u := args.Get(0).(*User)
	if err := mutate(u); err != nil {
		return nil, err
	}
	return u, args.Error(1)
}

func (m *MockUserRepository) Highscores() ([]HighScoreEntry, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]HighScoreEntry), args.Error(1)
}
