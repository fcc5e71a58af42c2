// Package httperr はapperrのエラー分類をHTTPレスポンスへ変換する境界層です。
// エラーのログ出力もここに集約され、各コンポーネントは自身でログを書きません。
package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stocks_api/internal/platform/apperr"
)

// ErrorResponse はすべての失敗レスポンスで共通のJSONエンベロープです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// Render はエラーを分類し、対応するステータスコードと {"error": ...} ボディで
// リクエストを中断します。apperr.Errorでないエラーはすべて500に畳み込まれるため、
// どの失敗もちょうど1つの結果を持ちます。
func Render(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal Server Error\n" + err.Error()

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
		switch appErr.Kind {
		case apperr.KindUnauthorized:
			status = http.StatusUnauthorized
		case apperr.KindNotFound:
			status = http.StatusNotFound
		case apperr.KindInvalidParams:
			status = http.StatusBadRequest
		case apperr.KindConflict:
			status = http.StatusUnprocessableEntity
		default:
			status = http.StatusInternalServerError
		}
	}

	slog.Error("request failed",
		"status", status,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"error", message,
	)
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
