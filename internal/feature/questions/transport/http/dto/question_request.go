// Package dto はquestionsフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// QuestionReq は質問作成エンドポイントのリクエストボディを表します。
type QuestionReq struct {
	Title string `json:"title" binding:"required"`
}

// AnswerReq は回答追加エンドポイントのリクエストボディを表します。
type AnswerReq struct {
	Content string `json:"content" binding:"required"`
}
