package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	s := "dddddd"
	hash := Hash(s)
	assert.Equal(t, 64, len(hash))
	assert.Equal(t, hash, Hash(s))
	assert.NotEqual(t, hash, Hash("eeeeee"))
}

func TestCheckNameValidity(t *testing.T) {
	assert.True(t, CheckNameValidity("a1b2c3-d4", false))
	assert.False(t, CheckNameValidity("v1.0", false))
	assert.True(t, CheckNameValidity("v1.0", true))
	assert.False(t, CheckNameValidity("", true))
	assert.False(t, CheckNameValidity("m1 or 1", false))
	assert.False(t, CheckNameValidity("m1)", true))
	assert.False(t, CheckNameValidity("a'b", false))
}

func TestPassword(t *testing.T) {
	hash, err := EncryptPassword("s3cret")
	assert.NoError(t, err)
	assert.True(t, MatchPassword("s3cret", hash))
	assert.False(t, MatchPassword("other", hash))
}
