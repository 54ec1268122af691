package controller

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCorrelationId(t *testing.T) {
	format := regexp.MustCompile(`^[a-f][0-9a-f]{31}$`)
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewCorrelationId()
		assert.Len(t, id, 32)
		assert.Regexp(t, format, id)
		assert.Equal(t, byte('a'), id[0])
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
