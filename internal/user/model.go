package user

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	GamesPlayed  int    `gorm:"not null;default:0" json:"gamesPlayed"`
	HighScore    int    `gorm:"not null;default:0" json:"highScore"`
	CurrentScore int    `gorm:"not null;default:0" json:"currentScore"`
}

type UserRequest struct {
	Username string `json:"username"`
}

type UserUpdateRequest struct {
	GamesPlayed int `json:"gamesPlayed"`
	HighScore   int `json:"highScore"`
}

type ScoreUpdateRequest struct {
	Correct bool `json:"correct"`
}

type ScoreResponse struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	GamesPlayed  int    `json:"gamesPlayed"`
	HighScore    int    `json:"highScore"`
	CurrentScore int    `json:"currentScore"`
	GameWon      bool   `json:"gameWon"`
}

type HighScoreEntry struct {
	Username  string `json:"username"`
	HighScore int    `json:"highScore"`
}
