package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lifelog/internal/db"
	"github.com/lifelog/internal/log"
	"gorm.io/gorm"
)

// AuthService 校验数据所有者的登录凭据
type AuthService struct {
	db     *gorm.DB
	logger *log.Logger
}

// NewAuthService 构造 AuthService
func NewAuthService(gdb *gorm.DB, logger *log.Logger) *AuthService {
	if logger == nil {
		logger = log.Discard()
	}
	return &AuthService{db: gdb, logger: logger.WithComponent(log.ComponentAuth)}
}

// Login 校验用户名与密码，失败时返回 ErrUnauthorized
func (s *AuthService) Login(ctx context.Context, username, password string) (*db.Owner, error) {
	owner, err := db.Authenticate(s.db.WithContext(ctx), username, password)
	if err != nil {
		if errors.Is(err, db.ErrInvalidCredentials) {
			s.logger.WarnContext(ctx, "login rejected", log.FieldOperation, log.OpLogin)
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("login: %w", err)
	}
	s.logger.InfoContext(ctx, "login succeeded", log.FieldOperation, log.OpLogin)
	return owner, nil
}
