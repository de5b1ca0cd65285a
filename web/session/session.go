package session

import (
	"encoding/gob"

	"staff-ui/database/model"
	"staff-ui/web/entity"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginUser = "LOGIN_USER"

func init() {
	gob.Register(model.User{})
	gob.Register(entity.Flash{})
}

func SetLoginUser(c *gin.Context, user *model.User) error {
	s := sessions.Default(c)
	s.Set(loginUser, *user)
	return s.Save()
}

func GetLoginUser(c *gin.Context) *model.User {
	s := sessions.Default(c)
	if obj := s.Get(loginUser); obj != nil {
		if user, ok := obj.(model.User); ok {
			return &user
		}
	}
	return nil
}

func IsLogin(c *gin.Context) bool {
	return GetLoginUser(c) != nil
}

// ClearSession ends the session. Calling it without an active session is
// not an error.
func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}

// AddFlash queues a one-shot message for the next rendered page.
func AddFlash(c *gin.Context, category string, content string) {
	s := sessions.Default(c)
	s.AddFlash(entity.Flash{Category: category, Content: content})
	_ = s.Save()
}

// PopFlashes drains and returns the queued messages.
func PopFlashes(c *gin.Context) []entity.Flash {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) > 0 {
		_ = s.Save()
	}
	flashes := make([]entity.Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(entity.Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}
