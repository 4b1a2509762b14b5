package models

type AddToCartRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	ProductID string `json:"productId" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"omitempty"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type QuizAnswerRequest struct {
	QuestionID QuestionID `json:"questionId" binding:"required"`
	Value      string     `json:"value" binding:"required"`
}

type ResolveQuizRequest struct {
	Answers QuizAnswers `json:"answers" binding:"required"`
}

type SessionResponse struct {
	SessionID string `json:"sessionId"`
}

type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Rate   string `json:"rate"`
}
