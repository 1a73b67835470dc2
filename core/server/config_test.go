package server_test

import (
	"testing"

	"unique-checker/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Address(t *testing.T) {
	tests := []struct {
		name string
		cfg  server.Config
		want string
	}{
		{"Loopback", server.Config{Host: "127.0.0.1", Port: "8080"}, "127.0.0.1:8080"},
		{"AllInterfaces", server.Config{Host: "", Port: "9000"}, ":9000"},
		{"IPv6", server.Config{Host: "::1", Port: "8080"}, "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Address())
		})
	}
}

func TestConfig_AuthEnabled(t *testing.T) {
	assert.False(t, server.Config{}.AuthEnabled())
	assert.True(t, server.Config{ApiKey: "secret"}.AuthEnabled())
}
