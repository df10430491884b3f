// Package dto はnotesフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// NoteReq はノート作成・更新エンドポイントのリクエストボディを表します。
// タイトルと本文はどちらも必須です。
type NoteReq struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}
