package pwhash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher(t *testing.T) {
	ph, err := New(16, 1000)
	require.NoError(t, err)

	hash, err := ph.HashPassword("s3cret")
	require.NoError(t, err)
	assert.Len(t, strings.Split(hash, "$"), 3)

	assert.NoError(t, ph.Validate("s3cret", hash))
	assert.Error(t, ph.Validate("wrong", hash))
	assert.Error(t, ph.Validate("s3cret", "garbage"))

	// hashing is salted: same input, different encodings
	hash2, err := ph.HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
	assert.NoError(t, ph.Validate("s3cret", hash2))
}

func TestPasswordHasherConfig(t *testing.T) {
	_, err := New(0, 1000)
	assert.Error(t, err)
	_, err = New(16, 0)
	assert.Error(t, err)
}
