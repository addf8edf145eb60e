package adapter

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlshim/pkg/dialect"
)

type stubAdapter struct {
	BaseSQLAdapter
	connectErr error
	connected  bool
}

func (s *stubAdapter) Connect(context.Context, Config) error {
	if s.connectErr != nil {
		return s.connectErr
	}
	s.connected = true
	return nil
}

func (s *stubAdapter) ServerVersion(context.Context) (string, error) { return "stub", nil }

func (s *stubAdapter) Dialect() dialect.Dialect { return nil }

func TestUnknownAdapterError_Error(t *testing.T) {
	err := &UnknownAdapterError{
		Type:      "fake_db",
		Available: []string{"mysql", "oscar"},
	}

	msg := err.Error()
	assert.Contains(t, msg, "fake_db")
	assert.Contains(t, msg, "mysql, oscar")
	assert.Contains(t, msg, "sqlshim.yaml", "error should point at the config file")
}

func TestRegister(t *testing.T) {
	Register("Test_Adapter_Internal", func(_ *slog.Logger) Adapter { return &stubAdapter{} })

	assert.True(t, IsRegistered("test_adapter_internal"))
	factory, ok := Get("TEST_ADAPTER_INTERNAL")
	assert.True(t, ok)
	assert.NotNil(t, factory)
	assert.Contains(t, ListAdapters(), "test_adapter_internal")
}

func TestNewAdapter_EmptyType(t *testing.T) {
	_, err := NewAdapter(Config{}, nil)
	require.ErrorIs(t, err, ErrTypeRequired)
}

func TestNewAdapter_Unknown(t *testing.T) {
	_, err := NewAdapter(Config{Type: "nope"}, nil)
	var unknown *UnknownAdapterError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nope", unknown.Type)
}

func TestOpen(t *testing.T) {
	stub := &stubAdapter{}
	Register("open_ok", func(_ *slog.Logger) Adapter { return stub })

	a, err := Open(context.Background(), Config{Type: "open_ok"}, nil)
	require.NoError(t, err)
	assert.Same(t, stub, a)
	assert.True(t, stub.connected)

	Register("open_fail", func(_ *slog.Logger) Adapter {
		return &stubAdapter{connectErr: assert.AnError}
	})
	_, err = Open(context.Background(), Config{Type: "open_fail"}, nil)
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "connect open_fail")
}
