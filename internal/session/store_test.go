package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/journeyq/dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "nested", "session.json"), "", nil)
}

func TestStore_LoadMissingFile(t *testing.T) {
	s := newTestStore(t)

	user, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestStore_SaveAndLoad(t *testing.T) {
	s := newTestStore(t)
	want := domain.MockUser()

	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestStore_PreservesOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"dark"}`), 0o644))

	s := NewStore(path, DefaultKey, nil)
	require.NoError(t, s.Save(domain.MockUser()))
	require.NoError(t, s.Clear())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"dark"}`, string(data))
}

func TestStore_CustomKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	a := NewStore(path, "a", nil)
	b := NewStore(path, "b", nil)

	require.NoError(t, a.Save(domain.MockUser()))

	got, err := b.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	s := NewStore(path, "", nil)
	_, err := s.Load()
	require.Error(t, err)

	var se *domain.SessionError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "load", se.Op)
	assert.Equal(t, path, se.Path)
}

func TestStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	user, err := NewStore(path, "", nil).Load()
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestStore_ClearEmpty(t *testing.T) {
	s := newTestStore(t)
	assert.NoError(t, s.Clear())
}

func TestStore_Login(t *testing.T) {
	s := newTestStore(t)

	user, err := s.Login("provider@example.com", domain.ServiceTourGuide)
	require.NoError(t, err)
	assert.Equal(t, "provider@example.com", user.Email)
	assert.Equal(t, domain.ServiceTourGuide, user.ServiceType)
	assert.Equal(t, "Grand Vista Hotel", user.BusinessName)

	stored, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, user, *stored)
}

func TestStore_LoginValidation(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		service domain.ServiceType
	}{
		{"empty email", "", domain.ServiceHotel},
		{"malformed email", "provider", domain.ServiceHotel},
		{"unknown service", "p@example.com", domain.ServiceType("spa")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			_, err := s.Login(tt.email, tt.service)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestStore_Signup(t *testing.T) {
	s := newTestStore(t)
	s.now = func() time.Time { return time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC) }

	user, err := s.Signup(domain.User{
		Name:         "Maria Lopez",
		Email:        "maria@example.com",
		ServiceType:  domain.ServiceTravelService,
		BusinessName: "Lopez Travel",
		Rating:       5,
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", user.JoinedDate)
	assert.NotZero(t, user.ID)
	assert.Zero(t, user.Rating, "new accounts start unrated")

	_, err = s.Signup(domain.User{Email: "x@example.com", ServiceType: domain.ServiceHotel})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_UpdateProfile(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Login("john@example.com", domain.ServiceHotel)
	require.NoError(t, err)

	service := domain.ServiceGeneral
	phone := "+1987654321"
	updated, err := s.UpdateProfile(domain.ProfileUpdate{ServiceType: &service, Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, domain.ServiceGeneral, updated.ServiceType)
	assert.Equal(t, "+1987654321", updated.Phone)

	stored, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, updated, *stored)
}

func TestStore_UpdateProfileWithoutSession(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateProfile(domain.ProfileUpdate{})
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestStore_Logout(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Login("john@example.com", domain.ServiceHotel)
	require.NoError(t, err)

	require.NoError(t, s.Logout())

	user, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, user)
}
