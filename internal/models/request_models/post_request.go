package request_models

type AddCommentRequest struct {
	Text string `json:"text" binding:"required,max=500"`
}
