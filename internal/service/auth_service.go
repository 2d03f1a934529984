package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"holistic/wellness-app/internal/domain"
	"holistic/wellness-app/internal/mail"
	"holistic/wellness-app/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrUserAlreadyExists    = errors.New("user with this email already exists")
	ErrUserNotFound         = errors.New("user not found")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid email or password")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
	ErrWeakPassword         = errors.New("password must be at least 6 characters")
	ErrInvalidResetCode     = errors.New("invalid or expired reset code")
	ErrWrongPassword        = errors.New("wrong current password")
	ErrInvalidRestriction   = errors.New("unknown dietary restriction")
)

// resetCodeTTL is how long an emailed password-reset code stays valid.
const resetCodeTTL = time.Hour

// validDietaryRestrictions is the closed list the profile accepts; recipe
// filtering on the client keys off these exact strings.
var validDietaryRestrictions = map[string]bool{
	"Type 1 Diabetes (Insulin-dependent)":                 true,
	"Type 2 Diabetes (Non-insulin dependent)":             true,
	"Gestational Diabetes":                                true,
	"Prediabetes/Insulin Resistance":                      true,
	"Hypoglycemia":                                        true,
	"Metabolic Syndrome":                                  true,
	"Hypertension (High Blood Pressure)":                  true,
	"Coronary Heart Disease":                              true,
	"High Cholesterol/Hyperlipidemia":                     true,
	"Heart Failure":                                       true,
	"Celiac Disease (Autoimmune gluten intolerance)":      true,
	"Crohn's Disease":                                     true,
	"Ulcerative Colitis":                                  true,
	"Irritable Bowel Syndrome (IBS)":                      true,
	"Gastroesophageal Reflux Disease (GERD)":              true,
	"Dairy/Milk Allergy":                                  true,
	"Peanut Allergy":                                      true,
	"Tree Nut Allergy (Almonds, Walnuts, Cashews, etc.)":  true,
	"Shellfish Allergy (Crustaceans & Mollusks)":          true,
	"Egg Allergy":                                         true,
	"Fish Allergy":                                        true,
	"Lactose Intolerance":                                 true,
	"Gluten Sensitivity (Non-celiac)":                     true,
	"Fructose Intolerance":                                true,
	"FODMAP Intolerance":                                  true,
	"Halal (Islamic dietary requirements)":                true,
	"Kosher (Jewish dietary laws)":                        true,
	"Hindu Vegetarian":                                    true,
	"Jain Vegetarian (Strict vegan + no root vegetables)": true,
	"Lacto-Ovo Vegetarian":                                true,
	"Strict Vegan":                                        true,
	"Pescatarian":                                         true,
	"Ketogenic Diet":                                      true,
	"Paleo Diet":                                          true,
	"Chronic Kidney Disease":                              true,
	"Kidney Stones":                                       true,
	"Liver Disease":                                       true,
	"Osteoporosis":                                        true,
	"Gout":                                                true,
}

// --- Service Interface ---
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (token string, user *domain.User, err error)
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
	// UpdateProfile changes name/email and, when newPassword is non-empty,
	// the password after verifying the current one.
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, name, email, currentPassword, newPassword string) (*domain.User, error)
	UpdateRestrictions(ctx context.Context, userID primitive.ObjectID, restrictions []string) (*domain.User, error)
	// ForgotPassword mails a one-hour reset code; only its bcrypt hash is
	// stored.
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

// --- Service Implementation ---

type authService struct {
	userRepo      repository.UserRepository
	mailer        mail.Mailer
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo repository.UserRepository, mailer mail.Mailer, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = time.Hour
	}
	return &authService{
		userRepo:      userRepo,
		mailer:        mailer,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register handles new user registration.
func (s *authService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, errors.New("name, email and password cannot be empty")
	}
	if len(password) < 6 {
		return nil, ErrWeakPassword
	}

	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		// The unique index closes the race between the existence check and
		// the insert.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}
	user.ID = userID

	user.PasswordHash = ""
	return user, nil
}

// Login handles user authentication and JWT generation.
func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, errors.New("email and password cannot be empty")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrAuthenticationFailed
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := generateToken(s.jwtSecret, s.jwtExpiration, user.ID.Hex(), domain.RoleUser)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	user.PasswordHash = ""
	return token, user, nil
}

// GetProfile returns the user's account data without the password hash.
func (s *authService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, name, email, currentPassword, newPassword string) (*domain.User, error) {
	if name == "" || email == "" {
		return nil, errors.New("name and email are required")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// Email changes must not collide with another account.
	if email != user.Email {
		if existing, err := s.userRepo.GetByEmail(ctx, email); err == nil && existing.ID != user.ID {
			return nil, ErrUserAlreadyExists
		} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		user.Email = email
	}
	user.Name = name

	if newPassword != "" {
		if currentPassword == "" {
			return nil, ErrWrongPassword
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
			return nil, ErrWrongPassword
		}
		if len(newPassword) < 6 {
			return nil, ErrWeakPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, ErrHashingFailed
		}
		user.PasswordHash = string(hashed)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *authService) UpdateRestrictions(ctx context.Context, userID primitive.ObjectID, restrictions []string) (*domain.User, error) {
	// Validate against the closed list and drop duplicates while keeping
	// the submitted order.
	seen := make(map[string]bool, len(restrictions))
	cleaned := make([]string, 0, len(restrictions))
	for _, r := range restrictions {
		if !validDietaryRestrictions[r] {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRestriction, r)
		}
		if !seen[r] {
			seen[r] = true
			cleaned = append(cleaned, r)
		}
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.DietaryRestrictions = cleaned
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	// Short random code from a UUID; the mailed value is never stored.
	rawCode := strings.SplitN(uuid.NewString(), "-", 2)[0]
	hashedCode, err := bcrypt.GenerateFromPassword([]byte(rawCode), bcrypt.DefaultCost)
	if err != nil {
		return ErrHashingFailed
	}

	expiry := time.Now().UTC().Add(resetCodeTTL)
	user.ResetCode = string(hashedCode)
	user.ResetCodeExpiry = &expiry
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	return s.mailer.Send(ctx, mail.Message{
		To:      email,
		Subject: "Password Reset Code",
		Body:    fmt.Sprintf("Your reset code is: %s\nIt will expire in 1 hour.", rawCode),
	})
}

func (s *authService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if email == "" || code == "" {
		return ErrInvalidResetCode
	}
	if len(newPassword) < 6 {
		return ErrWeakPassword
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if user.ResetCode == "" || user.ResetCodeExpiry == nil || user.ResetCodeExpiry.Before(time.Now().UTC()) {
		return ErrInvalidResetCode
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.ResetCode), []byte(code)); err != nil {
		return ErrInvalidResetCode
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrHashingFailed
	}

	user.PasswordHash = string(hashed)
	user.ResetCode = ""
	user.ResetCodeExpiry = nil
	return s.userRepo.Update(ctx, user)
}
