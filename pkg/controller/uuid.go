package controller

import (
	"strings"

	"github.com/google/uuid"
)

// NewCorrelationId 32 lowercase hex chars, the first one forced to 'a' since
// the id is reused in remote resource names that can't start with a digit
func NewCorrelationId() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "a" + id[1:]
}
