package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionClient_RequiresAddress(t *testing.T) {
	tests := []struct {
		name string
		cfg  RedisConfig
	}{
		{"single node", RedisConfig{ClusterMode: false}},
		{"cluster", RedisConfig{ClusterMode: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewSessionClient(tt.cfg)
			assert.Nil(t, client)
			assert.Error(t, err)
		})
	}
}
