package utils

import (
	"crypto/sha256"
	"fmt"
	"regexp"
	"time"
)

var (
	invalidResourceName = regexp.MustCompile(`[^0-9a-zA-Z-]`)
	invalidVersionName  = regexp.MustCompile(`[^0-9a-zA-Z-.]`)
)

func Hash(s string) string {
	h := sha256.New()
	h.Write([]byte(s))
	bs := h.Sum(nil)
	return fmt.Sprintf("%x", bs[:32])
}

func TimestampS() int64 {
	return time.Now().Unix()
}

// CheckNameValidity resource names only use letters, digits and '-', api
// version names may also use '.'
func CheckNameValidity(name string, isVersion bool) bool {
	if name == "" {
		return false
	}
	if isVersion {
		return !invalidVersionName.MatchString(name)
	}
	return !invalidResourceName.MatchString(name)
}
