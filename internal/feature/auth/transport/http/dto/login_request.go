// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// LoginReq は/auth/loginエンドポイントのリクエストボディを表します。
// 必須チェックのみ行います。メール形式の検証はせず、未登録メールと
// 同じ401を返すため、形式不正なメールも資格情報チェックに進みます。
type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
