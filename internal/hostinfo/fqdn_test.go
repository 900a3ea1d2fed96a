package hostinfo

import (
	"testing"

	"github.com/friendsofgo/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) LookupHost(host string) ([]string, error) {
	args := m.Called(host)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockResolver) LookupAddr(addr string) ([]string, error) {
	args := m.Called(addr)
	return args.Get(0).([]string), args.Error(1)
}

func hostname(name string) func() (string, error) {
	return func() (string, error) { return name, nil }
}

func TestLookupQualifiedNameUnresolvable(t *testing.T) {
	r := &MockResolver{}
	r.On("LookupHost", "instance-1.example.internal").Return([]string(nil), errors.New("no such host"))

	name, err := Lookup(hostname("instance-1.example.internal"), r)
	require.NoError(t, err)
	assert.Equal(t, "instance-1.example.internal", name)
}

func TestLookupQualifiedNameStillReverseResolves(t *testing.T) {
	r := &MockResolver{}
	r.On("LookupHost", "instance-1.example.internal").Return([]string{"10.0.0.5"}, nil)
	r.On("LookupAddr", "10.0.0.5").Return([]string{"instance-1.c.my-project.internal."}, nil)

	name, err := Lookup(hostname("instance-1.example.internal"), r)
	require.NoError(t, err)
	assert.Equal(t, "instance-1.c.my-project.internal", name)
	r.AssertExpectations(t)
}

func TestLookupReverseResolves(t *testing.T) {
	r := &MockResolver{}
	r.On("LookupHost", "instance-1").Return([]string{"10.0.0.5", "fe80::1"}, nil)
	r.On("LookupAddr", "10.0.0.5").Return([]string{"instance-1", "instance-1.c.my-project.internal."}, nil)

	name, err := Lookup(hostname("instance-1"), r)
	require.NoError(t, err)
	assert.Equal(t, "instance-1.c.my-project.internal", name)
	r.AssertNotCalled(t, "LookupAddr", "fe80::1")
}

func TestLookupSkipsFailedReverseLookups(t *testing.T) {
	r := &MockResolver{}
	r.On("LookupHost", "instance-1").Return([]string{"10.0.0.5", "10.0.0.6"}, nil)
	r.On("LookupAddr", "10.0.0.5").Return([]string(nil), errors.New("no such host"))
	r.On("LookupAddr", "10.0.0.6").Return([]string{"instance-1.example.internal"}, nil)

	name, err := Lookup(hostname("instance-1"), r)
	require.NoError(t, err)
	assert.Equal(t, "instance-1.example.internal", name)
	r.AssertExpectations(t)
}

func TestLookupFallsBackToShortName(t *testing.T) {
	r := &MockResolver{}
	r.On("LookupHost", "instance-1").Return([]string(nil), errors.New("no such host"))

	name, err := Lookup(hostname("instance-1"), r)
	require.NoError(t, err)
	assert.Equal(t, "instance-1", name)
}

func TestLookupHostnameError(t *testing.T) {
	_, err := Lookup(func() (string, error) { return "", errors.New("boom") }, &MockResolver{})
	assert.Error(t, err)
}

func TestFQDN(t *testing.T) {
	name, err := FQDN()
	require.NoError(t, err)
	assert.NotEmpty(t, name)
}
