// Package auth provides the bearer-token gate for the API.
package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"stocks_api/internal/platform/apperr"
	"stocks_api/internal/platform/httperr"
)

// ContextAccessToken はginコンテキストに格納されるアクセストークンのキーです。
const ContextAccessToken = "accessToken"

// bearerPrefix はAuthorizationヘッダーで要求されるスキームプレフィックスです。
const bearerPrefix = "Bearer "

// RequireAccessToken returns a Gin middleware that restricts access to requests
// carrying a non-empty bearer token.
//
// The token is the substring after the literal "Bearer " prefix of the
// Authorization header; a missing header or missing prefix yields the empty
// string and the request is rejected with 401 before reaching any handler.
// Token validity against a credential store is not part of this service, so any
// non-empty token is accepted. The extracted token is stored on the request
// context once so later stages never re-parse the header.
func RequireAccessToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		var token string
		if strings.HasPrefix(header, bearerPrefix) {
			token = strings.TrimPrefix(header, bearerPrefix)
		}

		if token == "" {
			httperr.Render(c, apperr.ErrUnauthorized)
			return
		}

		c.Set(ContextAccessToken, token)
		c.Next()
	}
}
