package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/streakquiz/backend/internal/user"
)

const INVALID_REQUEST = "invalid request"

var Users *user.UserService

func RegisterUserRoutes(e *echo.Echo, service *user.UserService) {
	Users = service

	e.POST("/users", CreateUserHandler)
	e.POST("/login", LoginHandler)
	e.GET("/users/by-username/:username", GetUserByUsernameHandler)
	e.GET("/users/:id", GetUserHandler)
	e.GET("/highscores", HighscoresHandler)
	e.PUT("/users/:id", UpdateUserHandler)
	e.PUT("/users/:id/update-score", UpdateScoreHandler)
}

func CreateUserHandler(c echo.Context) error {
	var req user.UserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	created, err := Users.CreateUser(req.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func LoginHandler(c echo.Context) error {
	var req user.UserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	u, err := Users.Login(req.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

func GetUserByUsernameHandler(c echo.Context) error {
	u, err := Users.GetUserByUsername(c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

func GetUserHandler(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	u, errUser := Users.GetUser(id)
	if errUser != nil {
		return errUser
	}
	return c.JSON(http.StatusOK, u)
}

func HighscoresHandler(c echo.Context) error {
	scores, err := Users.Highscores()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, scores)
}

func UpdateUserHandler(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	var req user.UserUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	u, errUpdate := Users.OverwriteStats(id, &req)
	if errUpdate != nil {
		return errUpdate
	}
	return c.JSON(http.StatusOK, u)
}

func UpdateScoreHandler(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	var req user.ScoreUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	snapshot, errScore := Users.UpdateScore(id, req.Correct)
	if errScore != nil {
		return errScore
	}
	return c.JSON(http.StatusOK, snapshot)
}

func userID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}
	return id, nil
}
