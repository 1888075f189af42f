package api

// ErrorResponse 全域錯誤響應模型
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Success *bool  `json:"success,omitempty"`
	Message string `json:"message" example:"Menu item not found"`
	Error   string `json:"error,omitempty" example:"connection refused"`
}

// MessageResponse 僅含訊息的回應，例如刪除成功
// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Menu item deleted"`
}
