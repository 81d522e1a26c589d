package services

import (
	"errors"

	"github.com/anilkaliya/LifeOs/config"
	"github.com/anilkaliya/LifeOs/models"
	"github.com/anilkaliya/LifeOs/utils"

	"github.com/markbates/goth"
	"gorm.io/gorm"
)

var ErrEmailTaken = errors.New("email already registered")

func RegisterUser(name, email, password string) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		Name:     name,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func AuthenticateUser(email, password string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, errors.New("invalid email or password")
	}

	if user.Password == "" || !utils.CheckPasswordHash(password, user.Password) {
		return nil, errors.New("invalid email or password")
	}

	return &user, nil
}

// FindOrCreateGoogleUser upserts the account for a completed OAuth login:
// match by googleId first, then link by email (a local account logging in
// with Google for the first time), else create. Profile fields are
// refreshed on every login.
func FindOrCreateGoogleUser(gothUser goth.User) (*models.User, error) {
	var user models.User

	err := config.DB.Where("google_id = ?", gothUser.UserID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = config.DB.Where("email = ?", gothUser.Email).First(&user).Error
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		googleID := gothUser.UserID
		user = models.User{
			GoogleID: &googleID,
			Email:    gothUser.Email,
			Name:     gothUser.Name,
			Picture:  gothUser.AvatarURL,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if err != nil {
		return nil, err
	}

	googleID := gothUser.UserID
	user.GoogleID = &googleID
	if gothUser.Name != "" {
		user.Name = gothUser.Name
	}
	if gothUser.AvatarURL != "" {
		user.Picture = gothUser.AvatarURL
	}
	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
