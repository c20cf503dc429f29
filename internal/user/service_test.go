package user

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byEmail map[string]*User
	byID    map[string]*User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*User),
		byID:    make(map[string]*User),
	}
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u *User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return ErrEmailAlreadyUsed
	}
	f.nextID++
	u.ID = "user-" + strconv.Itoa(f.nextID)
	u.CreatedAt = time.Now()
	cp := *u
	f.byEmail[u.Email] = &cp
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, id string, t time.Time) error {
	u, ok := f.byID[id]
	if !ok {
		return ErrNotFound
	}
	u.LastLoginAt = &t
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context, filter Filter) ([]*User, int, error) {
	var out []*User
	for _, u := range f.byID {
		out = append(out, u)
	}
	return out, len(out), nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *User) error {
	if _, ok := f.byID[u.ID]; !ok {
		return ErrNotFound
	}
	cp := *u
	f.byID[u.ID] = &cp
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	u, ok := f.byID[id]
	if !ok {
		return ErrNotFound
	}
	u.IsActive = false
	return nil
}

// plainHasher avoids bcrypt cost in unit tests.
type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

func (plainHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a customer with normalized email", func(t *testing.T) {
		svc := NewService(newFakeUserRepo(), plainHasher{})

		u, err := svc.Register(ctx, "  Guest@Example.COM ", "supersecret", "Guest")
		require.NoError(t, err)
		assert.Equal(t, "guest@example.com", u.Email)
		assert.Equal(t, RoleCustomer, u.Role)
		assert.Equal(t, 0, u.LoyaltyPoints)
		assert.True(t, u.IsActive)
		require.NotNil(t, u.DisplayName)
		assert.Equal(t, "Guest", *u.DisplayName)
	})

	t.Run("rejects short password", func(t *testing.T) {
		svc := NewService(newFakeUserRepo(), plainHasher{})

		_, err := svc.Register(ctx, "guest@example.com", "short", "Guest")
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("rejects empty email", func(t *testing.T) {
		svc := NewService(newFakeUserRepo(), plainHasher{})

		_, err := svc.Register(ctx, "   ", "supersecret", "Guest")
		assert.ErrorIs(t, err, ErrEmailRequired)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewService(repo, plainHasher{})

		_, err := svc.Register(ctx, "guest@example.com", "supersecret", "Guest")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "GUEST@example.com", "supersecret", "Other")
		assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	setup := func() (*fakeUserRepo, Service) {
		repo := newFakeUserRepo()
		svc := NewService(repo, plainHasher{})
		_, err := svc.Register(ctx, "guest@example.com", "supersecret", "Guest")
		require.NoError(t, err)
		return repo, svc
	}

	t.Run("success records last login", func(t *testing.T) {
		repo, svc := setup()

		u, err := svc.Login(ctx, "guest@example.com", "supersecret")
		require.NoError(t, err)
		assert.NotNil(t, repo.byID[u.ID].LastLoginAt)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, svc := setup()

		_, err := svc.Login(ctx, "guest@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, svc := setup()

		_, err := svc.Login(ctx, "nobody@example.com", "supersecret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		repo, svc := setup()
		repo.byEmail["guest@example.com"].IsActive = false

		_, err := svc.Login(ctx, "guest@example.com", "supersecret")
		assert.ErrorIs(t, err, ErrInactiveUser)
	})
}

func TestAdminUpdate(t *testing.T) {
	ctx := context.Background()
	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	setup := func() (string, Service) {
		repo := newFakeUserRepo()
		svc := NewService(repo, plainHasher{})
		u, err := svc.Register(ctx, "guest@example.com", "supersecret", "Guest")
		require.NoError(t, err)
		return u.ID, svc
	}

	t.Run("promote to admin and deactivate", func(t *testing.T) {
		id, svc := setup()

		u, err := svc.AdminUpdate(ctx, id, AdminUpdate{
			Role:     strPtr("admin"),
			IsActive: boolPtr(false),
		})
		require.NoError(t, err)
		assert.Equal(t, RoleAdmin, u.Role)
		assert.False(t, u.IsActive)
	})

	t.Run("invalid role", func(t *testing.T) {
		id, svc := setup()

		_, err := svc.AdminUpdate(ctx, id, AdminUpdate{Role: strPtr("superuser")})
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, svc := setup()

		_, err := svc.AdminUpdate(ctx, "user-x", AdminUpdate{Role: strPtr("admin")})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	strPtr := func(s string) *string { return &s }

	repo := newFakeUserRepo()
	svc := NewService(repo, plainHasher{})
	u, err := svc.Register(ctx, "guest@example.com", "supersecret", "Guest")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, u.ID, ProfileUpdate{
		DisplayName: strPtr("  New Name  "),
		Preferences: map[string]any{"newsletter": true},
	})
	require.NoError(t, err)
	require.NotNil(t, updated.DisplayName)
	assert.Equal(t, "New Name", *updated.DisplayName)
	assert.Equal(t, map[string]any{"newsletter": true}, updated.Preferences)

	// Blank display name clears it
	updated, err = svc.UpdateProfile(ctx, u.ID, ProfileUpdate{DisplayName: strPtr("   ")})
	require.NoError(t, err)
	assert.Nil(t, updated.DisplayName)
}
