package service

import (
	"context"
	"errors"
	"time"

	"wingman-ai-be/internal/dto"
	"wingman-ai-be/internal/repository/memory"
	"wingman-ai-be/internal/repository/specification"
	"wingman-ai-be/internal/repository/unitofwork"
	"wingman-ai-be/pkg/store"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error)
	GetTheme(ctx context.Context, userId uuid.UUID) (*dto.ThemeResponse, error)
	UpdateTheme(ctx context.Context, userId uuid.UUID, req *dto.UpdateThemeRequest) (*dto.ThemeResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	sessions   *memory.SessionRepository
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, sessions *memory.SessionRepository) IUserService {
	return &userService{
		uowFactory: uowFactory,
		sessions:   sessions,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	profile := toUserProfile(user)
	return &profile, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	user.FullName = req.FullName
	user.Profession = req.Profession
	user.UpdatedAt = time.Now()

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	profile := toUserProfile(user)
	return &profile, nil
}

func (s *userService) GetTheme(ctx context.Context, userId uuid.UUID) (*dto.ThemeResponse, error) {
	session := s.sessions.GetOrCreate(userId.String())
	return &dto.ThemeResponse{Theme: session.Theme}, nil
}

func (s *userService) UpdateTheme(ctx context.Context, userId uuid.UUID, req *dto.UpdateThemeRequest) (*dto.ThemeResponse, error) {
	theme := store.ThemeLight
	if req.Theme == "dark" {
		theme = store.ThemeDark
	}

	session := s.sessions.GetOrCreate(userId.String())
	session.Theme = theme
	s.sessions.Save(session)

	return &dto.ThemeResponse{Theme: session.Theme}, nil
}
