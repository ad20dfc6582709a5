package auth

import (
	"context"
	"errors"

	"github.com/classtrack/coaching-backend-go/internal/domain/auth"
	"github.com/classtrack/coaching-backend-go/internal/domain/teacher"
	"github.com/classtrack/coaching-backend-go/internal/domain/user"
	"github.com/classtrack/coaching-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	teacher.TeacherRepository
	jwtService jwt.Service
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	usr, err := a.UserRepository.GetByEmail(ctx, req.Email, req.TenantID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	var teacherID *string
	teach, err := a.TeacherRepository.GetByUserID(ctx, usr.ID, req.TenantID)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	if teach != nil {
		teacherID = &teach.ID
	}

	token, expiresAt, err := a.jwtService.GenerateAccessToken(usr.ID, usr.TenantID, usr.Role, teacherID)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Role:        string(usr.Role),
	}, nil
}

func NewAuthService(
	userRepo user.UserRepository,
	teacherRepo teacher.TeacherRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository:    userRepo,
		TeacherRepository: teacherRepo,
		jwtService:        jwtService,
	}
}
