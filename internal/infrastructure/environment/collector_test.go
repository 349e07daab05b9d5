package environment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fakeEnv(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestCollectAllSignals(t *testing.T) {
	collector := NewCollectorWith(fakeEnv(map[string]string{
		"VIRTUAL_ENV":    "/home/alice/code/api/.venv",
		"SSH_CONNECTION": "10.0.0.1 5000 10.0.0.2 22",
		"HOME":           "/home/alice",
	}), func() (string, error) { return "devbox", nil })

	snapshot := collector.Collect(context.Background())
	assert.True(t, snapshot.HasVirtualEnv)
	assert.Equal(t, "api", snapshot.VirtualEnvName)
	assert.True(t, snapshot.HasSSH)
	assert.True(t, snapshot.HasHostname)
	assert.Equal(t, "devbox", snapshot.Hostname)
	assert.True(t, snapshot.HasHome)
	assert.Equal(t, "/home/alice", snapshot.Home)
}

func TestCollectNothingSet(t *testing.T) {
	called := false
	collector := NewCollectorWith(fakeEnv(nil), func() (string, error) {
		called = true
		return "devbox", nil
	})

	snapshot := collector.Collect(context.Background())
	assert.False(t, snapshot.HasVirtualEnv)
	assert.False(t, snapshot.HasSSH)
	assert.False(t, snapshot.HasHome)
	assert.False(t, called, "hostname is only resolved inside SSH sessions")
}

func TestCollectHostnameFailure(t *testing.T) {
	collector := NewCollectorWith(fakeEnv(map[string]string{"SSH_CONNECTION": ""}),
		func() (string, error) { return "", errors.New("no hostname") })

	snapshot := collector.Collect(context.Background())
	assert.True(t, snapshot.HasSSH)
	assert.False(t, snapshot.HasHostname)
}

func TestVirtualEnvName(t *testing.T) {
	tests := map[string]string{
		"/home/alice/code/api/.venv": "api",
		"/opt/envs/py311":            "envs",
		"/venv":                      "",
		"venv":                       "",
		"relative/env":               "relative",
	}
	for path, expected := range tests {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, expected, VirtualEnvName(path))
		})
	}
}
