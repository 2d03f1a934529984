package service

import (
	"context"
	"errors"
	"time"

	"holistic/wellness-app/internal/domain"
	"holistic/wellness-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrAdminAlreadyExists = errors.New("admin with this email already exists")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrLastAdmin          = errors.New("cannot delete the last admin account")
)

// --- Service Interface ---

// AdminService is the parallel authentication realm. Admin accounts live in
// their own collection and manage both user and admin accounts.
type AdminService interface {
	Register(ctx context.Context, name, email, password string) (*domain.Admin, error)
	Login(ctx context.Context, email, password string) (token string, admin *domain.Admin, err error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	// DeleteUser removes the account and its tracker document.
	DeleteUser(ctx context.Context, userID primitive.ObjectID) error
	ListAdmins(ctx context.Context) ([]domain.Admin, error)
	DeleteAdmin(ctx context.Context, adminID primitive.ObjectID) error
}

// --- Service Implementation ---

type adminService struct {
	adminRepo     repository.AdminRepository
	userRepo      repository.UserRepository
	trackerRepo   repository.TrackerRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAdminService creates a new instance of adminService.
func NewAdminService(adminRepo repository.AdminRepository, userRepo repository.UserRepository, trackerRepo repository.TrackerRepository, jwtSecret string, jwtExpiration time.Duration) AdminService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty")
	}
	if jwtExpiration <= 0 {
		jwtExpiration = time.Hour
	}
	return &adminService{
		adminRepo:     adminRepo,
		userRepo:      userRepo,
		trackerRepo:   trackerRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

func (s *adminService) Register(ctx context.Context, name, email, password string) (*domain.Admin, error) {
	if name == "" || email == "" || password == "" {
		return nil, errors.New("name, email and password cannot be empty")
	}
	if len(password) < 6 {
		return nil, ErrWeakPassword
	}

	_, err := s.adminRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrAdminAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	admin := &domain.Admin{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
	}
	adminID, err := s.adminRepo.Create(ctx, admin)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAdminAlreadyExists
		}
		return nil, err
	}
	admin.ID = adminID

	admin.PasswordHash = ""
	return admin, nil
}

func (s *adminService) Login(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	if email == "" || password == "" {
		return "", nil, errors.New("email and password cannot be empty")
	}

	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrAuthenticationFailed
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := generateToken(s.jwtSecret, s.jwtExpiration, admin.ID.Hex(), domain.RoleAdmin)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	admin.PasswordHash = ""
	return token, admin, nil
}

func (s *adminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (s *adminService) DeleteUser(ctx context.Context, userID primitive.ObjectID) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	// The tracker belongs to the account; drop it with the account.
	return s.trackerRepo.Clear(ctx, userID)
}

func (s *adminService) ListAdmins(ctx context.Context) ([]domain.Admin, error) {
	admins, err := s.adminRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range admins {
		admins[i].PasswordHash = ""
	}
	return admins, nil
}

func (s *adminService) DeleteAdmin(ctx context.Context, adminID primitive.ObjectID) error {
	admins, err := s.adminRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(admins) <= 1 {
		return ErrLastAdmin
	}

	if err := s.adminRepo.Delete(ctx, adminID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAdminNotFound
		}
		return err
	}
	return nil
}
