// Package dto はprofileフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// ProfileReq はプロフィール更新エンドポイントのリクエストボディを表します。
// 全置換セマンティクスのため、省略されたフィールドは空値として扱われます。
type ProfileReq struct {
	Username string `json:"username"`
	Status   string `json:"status"`
}
