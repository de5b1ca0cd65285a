package service

import (
	"staff-ui/database"
	"staff-ui/database/model"
	"staff-ui/logger"
	"staff-ui/util/common"
	"staff-ui/util/crypto"

	"gorm.io/gorm"
)

// UserService is the credential store. It owns no state beyond the injected
// database handle.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetFirstUser() (*model.User, error) {
	user := &model.User{}
	err := s.db.Model(model.User{}).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CheckUser verifies a credential pair and returns the matching user, or
// nil when the username is unknown or the password does not verify. The
// two failures are deliberately indistinguishable to the caller.
func (s *UserService) CheckUser(username string, password string) *model.User {
	user := &model.User{}

	err := s.db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}

	if !crypto.CheckPasswordHash(user.PasswordHash, password) {
		return nil
	}

	return user
}

// CreateUser hashes the password and persists a new user. Returns
// ErrDuplicateUsername when the username is taken.
func (s *UserService) CreateUser(username string, password string) error {
	if username == "" {
		return common.NewError("username can not be empty")
	} else if password == "" {
		return common.NewError("password can not be empty")
	}

	var count int64
	err := s.db.Model(model.User{}).
		Where("username = ?", username).
		Count(&count).
		Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateUsername
	}

	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hash,
	}
	return s.db.Create(user).Error
}

// UpdateFirstUser rewrites the first user's credentials, creating the user
// when none exists yet. Used by the setting command.
func (s *UserService) UpdateFirstUser(username string, password string) error {
	if username == "" {
		return common.NewError("username can not be empty")
	} else if password == "" {
		return common.NewError("password can not be empty")
	}
	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}

	user := &model.User{}
	err = s.db.Model(model.User{}).First(user).Error
	if database.IsNotFound(err) {
		user.Username = username
		user.PasswordHash = hash
		return s.db.Model(model.User{}).Create(user).Error
	} else if err != nil {
		return err
	}
	user.Username = username
	user.PasswordHash = hash
	return s.db.Save(user).Error
}
