package handler

import (
	"net/http"
	"strings"
	"sync"

	"github.com/devsapp/serverless-aml-controller/pkg/config"
	"github.com/devsapp/serverless-aml-controller/pkg/utils"
	"github.com/gin-gonic/gin"
)

const (
	authorizeKey = "Authorization"
	bearerPrefix = "Bearer "
)

// ApiAuth check the bearer api key against a bcrypt hash. Accepted keys are
// remembered by their sha256 so bcrypt runs once per key.
func ApiAuth(keyHash string) gin.HandlerFunc {
	accepted := new(sync.Map)
	return func(c *gin.Context) {
		header := c.GetHeader(authorizeKey)
		if !strings.HasPrefix(header, bearerPrefix) {
			handleError(c, http.StatusUnauthorized, config.UNAUTHORIZED)
			c.Abort()
			return
		}
		key := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		digest := utils.Hash(key)
		if _, ok := accepted.Load(digest); !ok {
			if key == "" || !utils.MatchPassword(key, keyHash) {
				handleError(c, http.StatusUnauthorized, config.UNAUTHORIZED)
				c.Abort()
				return
			}
			accepted.Store(digest, struct{}{})
		}
		c.Next()
	}
}
