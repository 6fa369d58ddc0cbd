// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package rooms

import (
	"testing"

	"github.com/livekit/protocol/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	service := NewLiveKitService(Config{
		Host:      "http://localhost:7880",
		APIKey:    "devkey",
		APISecret: "devsecret-devsecret-devsecret-32",
	})

	t.Run("token carries room grant and identity", func(t *testing.T) {
		token, err := service.GenerateToken("meeting-abc", "user-1", "")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		verifier, err := auth.ParseAPIToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", verifier.Identity())

		claims, err := verifier.Verify("devsecret-devsecret-devsecret-32")
		require.NoError(t, err)
		require.NotNil(t, claims.Video)
		assert.True(t, claims.Video.RoomJoin)
		assert.Equal(t, "meeting-abc", claims.Video.Room)
	})

	t.Run("metadata is included when set", func(t *testing.T) {
		token, err := service.GenerateToken("meeting-abc", "user-2", `{"role":"host"}`)
		require.NoError(t, err)

		verifier, err := auth.ParseAPIToken(token)
		require.NoError(t, err)
		claims, err := verifier.Verify("devsecret-devsecret-devsecret-32")
		require.NoError(t, err)
		assert.Equal(t, `{"role":"host"}`, claims.Metadata)
	})
}
