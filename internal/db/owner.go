package db

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials 在用户名或密码不匹配时返回
var ErrInvalidCredentials = errors.New("invalid credentials")

// Owner 是唯一的数据所有者账号
type Owner struct {
	gorm.Model
	Username string `gorm:"unique;not null"`
	Password string `gorm:"not null"`
}

// EnsureOwner 存在性检查：若提供的用户名与密码均非空且不存在对应账号，则创建一个 bcrypt 哈希的账号。
func EnsureOwner(gdb *gorm.DB, username, password string) error {
	trimmedUser := strings.TrimSpace(username)
	trimmedPassword := strings.TrimSpace(password)
	if trimmedUser == "" || trimmedPassword == "" {
		return nil
	}

	if gdb == nil {
		return errors.New("database not initialized")
	}

	var existing Owner
	if err := gdb.Where("username = ?", trimmedUser).First(&existing).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("find owner: %w", err)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(trimmedPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash owner password: %w", err)
		}

		if err := gdb.Create(&Owner{Username: trimmedUser, Password: string(hashed)}).Error; err != nil {
			return fmt.Errorf("create owner: %w", err)
		}
	}

	return nil
}

// SetOwnerPassword 创建账号或重置已有账号的密码
func SetOwnerPassword(gdb *gorm.DB, username, password string) error {
	trimmedUser := strings.TrimSpace(username)
	trimmedPassword := strings.TrimSpace(password)
	if trimmedUser == "" || trimmedPassword == "" {
		return errors.New("username and password are required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(trimmedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash owner password: %w", err)
	}

	var existing Owner
	err = gdb.Where("username = ?", trimmedUser).First(&existing).Error
	switch {
	case err == nil:
		if err := gdb.Model(&existing).Update("password", string(hashed)).Error; err != nil {
			return fmt.Errorf("update owner password: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := gdb.Create(&Owner{Username: trimmedUser, Password: string(hashed)}).Error; err != nil {
			return fmt.Errorf("create owner: %w", err)
		}
	default:
		return fmt.Errorf("find owner: %w", err)
	}
	return nil
}

// Authenticate 校验用户名与密码，成功时返回账号
func Authenticate(gdb *gorm.DB, username, password string) (*Owner, error) {
	var owner Owner
	if err := gdb.Where("username = ?", strings.TrimSpace(username)).First(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find owner: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(owner.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &owner, nil
}
