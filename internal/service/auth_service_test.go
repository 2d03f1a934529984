package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"holistic/wellness-app/internal/domain"
	"holistic/wellness-app/internal/mail"
	"holistic/wellness-app/internal/repository"
	"holistic/wellness-app/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	testJWTSecret = "test-secret"
	testPassword  = "hunter22"
)

// userRepoMock keeps accounts in memory so multi-step flows (register,
// forgot password, reset, login) can run against real stored state.
type userRepoMock struct {
	state mockState
	users map[primitive.ObjectID]*domain.User
}

func newUserRepoMock() *userRepoMock {
	return &userRepoMock{users: make(map[primitive.ObjectID]*domain.User)}
}

func (m *userRepoMock) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	if m.state == stateDBError {
		return primitive.NilObjectID, errors.New("db error")
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	id := primitive.NewObjectID()
	stored := *user
	stored.ID = id
	m.users[id] = &stored
	return id, nil
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.state == stateDBError {
		return nil, errors.New("db error")
	}
	for _, u := range m.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *userRepoMock) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	if m.state == stateDBError {
		return nil, errors.New("db error")
	}
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *u
	return &out, nil
}

func (m *userRepoMock) Update(ctx context.Context, user *domain.User) error {
	if m.state == stateDBError {
		return errors.New("db error")
	}
	if _, ok := m.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *userRepoMock) List(ctx context.Context) ([]domain.User, error) {
	if m.state == stateDBError {
		return nil, errors.New("db error")
	}
	out := make([]domain.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *userRepoMock) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.state == stateDBError {
		return errors.New("db error")
	}
	if _, ok := m.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

type mailerMock struct {
	state mockState
	sent  []mail.Message
}

func (m *mailerMock) Send(ctx context.Context, msg mail.Message) error {
	if m.state == stateDBError {
		return errors.New("smtp error")
	}
	m.sent = append(m.sent, msg)
	return nil
}

func newAuthFixture() (*userRepoMock, *mailerMock, service.AuthService) {
	repo := newUserRepoMock()
	mailer := &mailerMock{}
	return repo, mailer, service.NewAuthService(repo, mailer, testJWTSecret, time.Hour)
}

func TestAuthRegister(t *testing.T) {
	_, _, s := newAuthFixture()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		user, err := s.Register(ctx, "Alice", "alice@example.com", testPassword)
		require.NoError(t, err)
		assert.False(t, user.ID.IsZero())
		assert.Equal(t, "Alice", user.Name)
		assert.Empty(t, user.PasswordHash)
	})
	t.Run("duplicate email", func(t *testing.T) {
		_, err := s.Register(ctx, "Alice Again", "alice@example.com", testPassword)
		assert.ErrorIs(t, err, service.ErrUserAlreadyExists)
	})
	t.Run("weak password", func(t *testing.T) {
		_, err := s.Register(ctx, "Bob", "bob@example.com", "short")
		assert.ErrorIs(t, err, service.ErrWeakPassword)
	})
	t.Run("missing fields", func(t *testing.T) {
		_, err := s.Register(ctx, "", "carol@example.com", testPassword)
		assert.Error(t, err)
	})
}

func TestAuthLogin(t *testing.T) {
	_, _, s := newAuthFixture()
	ctx := context.Background()

	_, err := s.Register(ctx, "Alice", "alice@example.com", testPassword)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		token, user, err := s.Login(ctx, "alice@example.com", testPassword)
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Empty(t, user.PasswordHash)
	})
	t.Run("wrong password", func(t *testing.T) {
		_, _, err := s.Login(ctx, "alice@example.com", "not-the-password")
		assert.ErrorIs(t, err, service.ErrAuthenticationFailed)
	})
	t.Run("unknown email", func(t *testing.T) {
		_, _, err := s.Login(ctx, "nobody@example.com", testPassword)
		assert.ErrorIs(t, err, service.ErrAuthenticationFailed)
	})
}

func TestAuthUpdateProfile(t *testing.T) {
	_, _, s := newAuthFixture()
	ctx := context.Background()

	user, err := s.Register(ctx, "Alice", "alice@example.com", testPassword)
	require.NoError(t, err)

	t.Run("rename and change email", func(t *testing.T) {
		updated, err := s.UpdateProfile(ctx, user.ID, "Alice B", "aliceb@example.com", "", "")
		require.NoError(t, err)
		assert.Equal(t, "Alice B", updated.Name)
		assert.Equal(t, "aliceb@example.com", updated.Email)
	})
	t.Run("email collision", func(t *testing.T) {
		_, err := s.Register(ctx, "Bob", "bob@example.com", testPassword)
		require.NoError(t, err)
		_, err = s.UpdateProfile(ctx, user.ID, "Alice B", "bob@example.com", "", "")
		assert.ErrorIs(t, err, service.ErrUserAlreadyExists)
	})
	t.Run("password change requires current password", func(t *testing.T) {
		_, err := s.UpdateProfile(ctx, user.ID, "Alice B", "aliceb@example.com", "wrong", "newpassword1")
		assert.ErrorIs(t, err, service.ErrWrongPassword)

		_, err = s.UpdateProfile(ctx, user.ID, "Alice B", "aliceb@example.com", testPassword, "newpassword1")
		require.NoError(t, err)

		_, _, err = s.Login(ctx, "aliceb@example.com", "newpassword1")
		assert.NoError(t, err)
	})
}

func TestAuthUpdateRestrictions(t *testing.T) {
	_, _, s := newAuthFixture()
	ctx := context.Background()

	user, err := s.Register(ctx, "Alice", "alice@example.com", testPassword)
	require.NoError(t, err)

	t.Run("accepts known values and drops duplicates", func(t *testing.T) {
		updated, err := s.UpdateRestrictions(ctx, user.ID, []string{
			"Lactose Intolerance",
			"Strict Vegan",
			"Lactose Intolerance",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Lactose Intolerance", "Strict Vegan"}, updated.DietaryRestrictions)
	})
	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := s.UpdateRestrictions(ctx, user.ID, []string{"Cake Only"})
		assert.ErrorIs(t, err, service.ErrInvalidRestriction)
	})
	t.Run("empty list clears", func(t *testing.T) {
		updated, err := s.UpdateRestrictions(ctx, user.ID, nil)
		require.NoError(t, err)
		assert.Empty(t, updated.DietaryRestrictions)
	})
}

func TestAuthPasswordReset(t *testing.T) {
	repo, mailer, s := newAuthFixture()
	ctx := context.Background()

	user, err := s.Register(ctx, "Alice", "alice@example.com", testPassword)
	require.NoError(t, err)

	t.Run("forgot password mails a code, not a hash", func(t *testing.T) {
		require.NoError(t, s.ForgotPassword(ctx, "alice@example.com"))
		require.Len(t, mailer.sent, 1)

		stored := repo.users[user.ID]
		assert.NotEmpty(t, stored.ResetCode)
		assert.NotContains(t, mailer.sent[0].Body, stored.ResetCode)
	})
	t.Run("reset with the mailed code", func(t *testing.T) {
		code := extractResetCode(t, mailer.sent[0].Body)
		require.NoError(t, s.ResetPassword(ctx, "alice@example.com", code, "brandnewpass"))

		_, _, err := s.Login(ctx, "alice@example.com", "brandnewpass")
		assert.NoError(t, err)

		// Code is single-use.
		err = s.ResetPassword(ctx, "alice@example.com", code, "anotherpass1")
		assert.ErrorIs(t, err, service.ErrInvalidResetCode)
	})
	t.Run("wrong code", func(t *testing.T) {
		require.NoError(t, s.ForgotPassword(ctx, "alice@example.com"))
		err := s.ResetPassword(ctx, "alice@example.com", "bogus", "anotherpass1")
		assert.ErrorIs(t, err, service.ErrInvalidResetCode)
	})
	t.Run("expired code", func(t *testing.T) {
		require.NoError(t, s.ForgotPassword(ctx, "alice@example.com"))
		stored := repo.users[user.ID]
		expired := time.Now().UTC().Add(-time.Minute)
		stored.ResetCodeExpiry = &expired

		code := extractResetCode(t, mailer.sent[len(mailer.sent)-1].Body)
		err := s.ResetPassword(ctx, "alice@example.com", code, "anotherpass1")
		assert.ErrorIs(t, err, service.ErrInvalidResetCode)
	})
	t.Run("unknown email", func(t *testing.T) {
		err := s.ForgotPassword(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})
}

func extractResetCode(t *testing.T, body string) string {
	t.Helper()
	const prefix = "Your reset code is: "
	start := strings.Index(body, prefix)
	require.GreaterOrEqual(t, start, 0)
	rest := body[start+len(prefix):]
	end := strings.IndexByte(rest, '\n')
	require.Greater(t, end, 0)
	return rest[:end]
}
