// Package apperr はアプリケーション全体のエラー分類を定義します。
// 各レイヤーはアドホックなエラーではなく、ここで定義された種別のエラーを返し、
// HTTP境界（httperr）が種別ごとにステータスコードへ変換します。
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind はエラーの分類を表します。分類ごとにHTTPステータスが一意に決まります。
type Kind int

const (
	// KindInternal は分類不能な失敗を表します（500）。
	KindInternal Kind = iota
	// KindUnauthorized は認証失敗を表します（401）。
	KindUnauthorized
	// KindNotFound は対象エンティティが存在しない（または論理削除済み）ことを表します（404）。
	KindNotFound
	// KindInvalidParams はリクエストパラメータの欠落・不正を表します（400）。
	KindInvalidParams
	// KindConflict は一意性制約違反を表します（422）。
	KindConflict
)

// Error は種別付きのアプリケーションエラーです。
type Error struct {
	Kind    Kind
	Message string
}

// Error はエラーメッセージを返します。
func (e *Error) Error() string { return e.Message }

// ErrUnauthorized is returned when the request carries no usable bearer token.
var ErrUnauthorized = &Error{Kind: KindUnauthorized, Message: "Invalid Bearer token"}

// NotFound は指定されたリソースが見つからなかったことを表すエラーを生成します。
// idにはパスパラメータの生の値を渡せるようanyを受け取ります。
func NotFound(resource string, id any) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("Couldn't find %s with 'id'=%v", resource, id),
	}
}

// MissingParams は必須パラメータの欠落を表すエラーを生成します。
// メッセージは宣言順のフィールドをカンマ区切りで列挙します。
func MissingParams(fields ...string) *Error {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+" is missing")
	}
	return &Error{Kind: KindInvalidParams, Message: strings.Join(parts, ", ")}
}

// InvalidParams はパラメータ不正の汎用エラーを生成します。
func InvalidParams(message string) *Error {
	return &Error{Kind: KindInvalidParams, Message: message}
}

// Taken は一意性制約違反を表すエラーを生成します。
func Taken(field string) *Error {
	return &Error{Kind: KindConflict, Message: field + " has already been taken"}
}

// KindOf はエラーの分類を返します。apperr.Errorでない場合はKindInternalです。
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
