package api

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog"

	"picnicapi/server/internal/errs"
	"picnicapi/server/internal/models"
)

type UserController struct {
	users UserStore
	log   zerolog.Logger
}

func NewUserController(users UserStore, log zerolog.Logger) *UserController {
	return &UserController{users: users, log: log}
}

// RegisterUserRequest - тело POST /users/
type RegisterUserRequest struct {
	Name    string `json:"name" binding:"required"`
	Surname string `json:"surname" binding:"required"`
	Age     *int   `json:"age" binding:"required,min=0"`
}

// GetUsers возвращает список пользователей.
// q=asc|desc сортирует по возрасту, иначе порядок добавления.
// GET /api/v1/users/?q=asc
func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.users.List(c.Request.Context())
	if err != nil {
		respondError(c, uc.log, err)
		return
	}

	switch c.Query("q") {
	case "asc":
		sort.SliceStable(users, func(i, j int) bool { return users[i].Age < users[j].Age })
	case "desc":
		sort.SliceStable(users, func(i, j int) bool { return users[i].Age > users[j].Age })
	}

	c.JSON(http.StatusOK, users)
}

// RegisterUser создает пользователя
// POST /api/v1/users/
func (uc *UserController) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindWith(&req, binding.JSON); err != nil {
		respondError(c, uc.log, errs.FromBindError(err))
		return
	}

	user := &models.User{Name: req.Name, Surname: req.Surname, Age: *req.Age}
	if err := uc.users.Create(c.Request.Context(), user); err != nil {
		respondError(c, uc.log, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
