package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"wingman-ai-be/internal/dto"
	"wingman-ai-be/internal/entity"
	"wingman-ai-be/internal/pkg/logger"
	"wingman-ai-be/internal/repository/specification"
	"wingman-ai-be/internal/repository/unitofwork"
	"wingman-ai-be/pkg/events"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAdminService interface {
	// User Management
	GetAllUsers(ctx context.Context, req *dto.AdminUserListRequest) (*dto.AdminUserListResponse, error)
	GetUserDetail(ctx context.Context, userId uuid.UUID) (*dto.AdminUserResponse, error)
	UpdateUserStatus(ctx context.Context, userId uuid.UUID, req *dto.UpdateUserStatusRequest) error
	CreateUser(ctx context.Context, req *dto.AdminCreateUserRequest) (*dto.UserProfileResponse, error)
	DeleteUser(ctx context.Context, userId uuid.UUID) error

	// Dashboard
	GetStats(ctx context.Context) (*dto.AdminStatsResponse, error)

	// Audit
	GetEmailLogs(ctx context.Context, limit int) ([]dto.EmailLogResponse, error)
	GetSystemLogs(ctx context.Context, req *dto.AdminLogListRequest) ([]logger.LogEntry, error)

	// ExportChatsCSV renders every chat record across owners as CSV.
	ExportChatsCSV(ctx context.Context) ([]byte, error)
}

type adminService struct {
	uowFactory     unitofwork.RepositoryFactory
	logger         logger.ILogger
	eventPublisher IPublisherService
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger, eventPublisher IPublisherService) IAdminService {
	return &adminService{
		uowFactory:     uowFactory,
		logger:         log,
		eventPublisher: eventPublisher,
	}
}

func (s *adminService) GetAllUsers(ctx context.Context, req *dto.AdminUserListRequest) (*dto.AdminUserListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	users, err := uow.UserRepository().SearchUsers(ctx, req.Search, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AdminUserResponse, 0, len(users))
	for _, u := range users {
		chatCount, err := uow.ChatRecordRepository().CountByUser(ctx, u.Id)
		if err != nil {
			// Keep the listing usable; the count degrades to zero.
			s.logger.Warn("Admin", "Failed to count chats for user", map[string]interface{}{
				"user_id": u.Id,
				"error":   err.Error(),
			})
		}
		out = append(out, toAdminUser(u, chatCount))
	}

	return &dto.AdminUserListResponse{
		Users: out,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *adminService) GetUserDetail(ctx context.Context, userId uuid.UUID) (*dto.AdminUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	chatCount, err := uow.ChatRecordRepository().CountByUser(ctx, user.Id)
	if err != nil {
		return nil, err
	}
	detail := toAdminUser(user, chatCount)
	return &detail, nil
}

func (s *adminService) UpdateUserStatus(ctx context.Context, userId uuid.UUID, req *dto.UpdateUserStatusRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}

	// Admins cannot lock each other out through this endpoint.
	if user.Role == entity.UserRoleAdmin && req.Status == string(entity.UserStatusBlocked) {
		return errors.New("cannot block an admin account")
	}

	if err := uow.UserRepository().UpdateStatus(ctx, userId, req.Status); err != nil {
		return err
	}

	s.logger.Info("Admin", "User status updated", map[string]interface{}{
		"user_id": userId,
		"status":  req.Status,
		"reason":  req.Reason,
	})

	if req.Status == string(entity.UserStatusBlocked) && s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: "USER_BLOCKED",
			Data: map[string]interface{}{
				"user_id": userId,
				"reason":  req.Reason,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, events.TopicUserBlocked, event); err != nil {
			fmt.Printf("[WARN] Failed to publish USER_BLOCKED event: %v\n", err)
		}
	}

	return nil
}

func (s *adminService) CreateUser(ctx context.Context, req *dto.AdminCreateUserRequest) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	now := time.Now()
	// Admin-created accounts skip the verification flow.
	user := &entity.User{
		Id:              uuid.New(),
		Email:           req.Email,
		FullName:        req.FullName,
		PasswordHash:    &hashStr,
		Role:            entity.UserRole(req.Role),
		Status:          entity.UserStatusActive,
		EmailVerified:   true,
		EmailVerifiedAt: &now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	profile := toUserProfile(user)
	return &profile, nil
}

func (s *adminService) DeleteUser(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}
	if user.Role == entity.UserRoleAdmin {
		return errors.New("cannot delete an admin account")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatRecordRepository().DeleteByUser(ctx, userId); err != nil {
		return err
	}
	if err := uow.UserRepository().Delete(ctx, userId); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *adminService) GetStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	active, _ := uow.UserRepository().CountByStatus(ctx, string(entity.UserStatusActive))
	pending, _ := uow.UserRepository().CountByStatus(ctx, string(entity.UserStatusPending))
	blocked, _ := uow.UserRepository().CountByStatus(ctx, string(entity.UserStatusBlocked))

	chats, err := uow.ChatRecordRepository().FindAllOrdered(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AdminStatsResponse{
		TotalUsers:   total,
		ActiveUsers:  active,
		PendingUsers: pending,
		BlockedUsers: blocked,
		TotalChats:   int64(len(chats)),
	}, nil
}

func (s *adminService) GetEmailLogs(ctx context.Context, limit int) ([]dto.EmailLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if limit < 1 || limit > 500 {
		limit = 100
	}

	logs, err := uow.EmailLogRepository().FindRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	out := make([]dto.EmailLogResponse, 0, len(logs))
	for _, l := range logs {
		resp := dto.EmailLogResponse{
			Id:        l.Id,
			Recipient: l.Recipient,
			Subject:   l.Subject,
			Kind:      l.Kind,
			Status:    l.Status,
			CreatedAt: l.CreatedAt,
		}
		if l.Error != nil {
			resp.Error = *l.Error
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *adminService) GetSystemLogs(ctx context.Context, req *dto.AdminLogListRequest) ([]logger.LogEntry, error) {
	limit := req.Limit
	if limit < 1 || limit > 500 {
		limit = 50
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}
	return s.logger.GetLogs(req.Level, limit, offset)
}

func (s *adminService) ExportChatsCSV(ctx context.Context) ([]byte, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	records, err := uow.ChatRecordRepository().FindAllOrdered(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "user_id", "user_input", "ai_response", "created_at"}); err != nil {
		return nil, err
	}
	for _, r := range records {
		row := []string{
			r.Id.String(),
			r.UserId.String(),
			r.UserInput,
			r.AiResponse,
			r.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func toAdminUser(u *entity.User, chatCount int64) dto.AdminUserResponse {
	return dto.AdminUserResponse{
		Id:            u.Id,
		Email:         u.Email,
		FullName:      u.FullName,
		Profession:    u.Profession,
		Role:          string(u.Role),
		Status:        string(u.Status),
		EmailVerified: u.EmailVerified,
		ChatCount:     chatCount,
		CreatedAt:     u.CreatedAt,
	}
}
