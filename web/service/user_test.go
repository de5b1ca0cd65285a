package service

import (
	"testing"

	"staff-ui/database"
	"staff-ui/database/model"

	"github.com/stretchr/testify/assert"
)

func TestDefaultUserSeed(t *testing.T) {
	db := setup(t)
	service := NewUserService(db)

	user, err := service.GetFirstUser()
	assert.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "password123", user.PasswordHash)

	// seeding is first-boot only: re-running init must not add a second user
	db2, err := database.InitDB("test.db")
	assert.NoError(t, err)
	defer database.CloseDB(db2)

	var count int64
	err = db2.Model(model.User{}).Count(&count).Error
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestCheckUser(t *testing.T) {
	db := setup(t)
	service := NewUserService(db)

	assert.Nil(t, service.CheckUser("admin", "wrong"))
	assert.Nil(t, service.CheckUser("nobody", "password123"))

	user := service.CheckUser("admin", "password123")
	assert.NotNil(t, user)
	assert.Equal(t, "admin", user.Username)
}

func TestCreateUser(t *testing.T) {
	db := setup(t)
	service := NewUserService(db)

	err := service.CreateUser("admin", "another")
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	err = service.CreateUser("operator", "hunter22")
	assert.NoError(t, err)
	assert.NotNil(t, service.CheckUser("operator", "hunter22"))
	assert.Nil(t, service.CheckUser("operator", "hunter2"))

	// usernames are case-sensitive as stored
	assert.Nil(t, service.CheckUser("Operator", "hunter22"))

	err = service.CreateUser("", "x")
	assert.Error(t, err)
	err = service.CreateUser("x", "")
	assert.Error(t, err)
}

func TestUpdateFirstUser(t *testing.T) {
	db := setup(t)
	service := NewUserService(db)

	err := service.UpdateFirstUser("boss", "s3cret")
	assert.NoError(t, err)

	assert.Nil(t, service.CheckUser("admin", "password123"))
	assert.NotNil(t, service.CheckUser("boss", "s3cret"))
}
