package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mau.fi/util/ptr"

	"github.com/reglet-dev/profilekit/internal/domain/entities"
	"github.com/reglet-dev/profilekit/internal/domain/values"
)

func NewTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func defaultProfile(t *testing.T) *entities.Profile {
	t.Helper()
	p, err := entities.NewProfile(entities.ProfileParams{
		ID:         "ID",
		FirstName:  ptr.Ptr("FIRST_NAME"),
		MiddleName: ptr.Ptr("MIDDLE_NAME"),
		LastName:   ptr.Ptr("LAST_NAME"),
		Name:       ptr.Ptr("NAME"),
		LinkURI:    ptr.Ptr(values.MustParseLinkURI("https://www.facebook.com/name")),
	})
	require.NoError(t, err)
	return p
}

func mostlyNullsProfile(t *testing.T) *entities.Profile {
	t.Helper()
	p, err := entities.NewProfile(entities.ProfileParams{ID: "ANOTHER_ID"})
	require.NoError(t, err)
	return p
}

// MockCache is an in-memory ports.ProfileCache with injectable failures.
type MockCache struct {
	profile  *entities.Profile
	LoadErr  error
	SaveErr  error
	ClearErr error
	loads    int
	saves    int
	clears   int
	mu       sync.Mutex
	loadGate chan struct{}
}

func (m *MockCache) Load(ctx context.Context) (*entities.Profile, error) {
	if m.loadGate != nil {
		<-m.loadGate
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.profile, nil
}

func (m *MockCache) Save(_ context.Context, p *entities.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.profile = p
	return nil
}

func (m *MockCache) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clears++
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.profile = nil
	return nil
}

var errCacheDown = errors.New("cache down")
