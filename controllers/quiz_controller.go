package controllers

import (
	"net/http"

	"valley-breezes/models"
	"valley-breezes/services"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Quiz *services.QuizService
}

type startQuizRequest struct {
	SessionID string `json:"sessionId"`
}

// GetQuestions godoc
// @Summary Quiz questions
// @Description The six quiz questions in order with their options.
// @Tags Quiz
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/quiz/questions [get]
func (ctrl *QuizController) GetQuestions(c *gin.Context) {
	respondOK(c, http.StatusOK, "Quiz questions retrieved", ctrl.Quiz.Questions())
}

// Resolve godoc
// @Summary Resolve answers
// @Description Maps an answer set straight to a recommendation. Pass sessionId to store the result.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param sessionId query string false "Session to store the result under"
// @Param request body models.ResolveQuizRequest true "Answers"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/quiz/resolve [post]
func (ctrl *QuizController) Resolve(c *gin.Context) {
	var req models.ResolveQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := ctrl.Quiz.ResolveAnswers(c.Request.Context(), c.Query("sessionId"), req.Answers)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusOK, "Recommendation resolved", result)
}

// StartSession godoc
// @Summary Start quiz
// @Description Opens a quiz on the first question. An empty session id gets a generated one.
// @Tags Quiz
// @Accept json
// @Produce json
// @Success 201 {object} models.Response
// @Router /api/quiz/sessions [post]
func (ctrl *QuizController) StartSession(c *gin.Context) {
	var req startQuizRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}
	respondOK(c, http.StatusCreated, "Quiz started", ctrl.Quiz.Start(c.Request.Context(), req.SessionID))
}

// GetSession godoc
// @Summary Quiz state
// @Tags Quiz
// @Produce json
// @Param id path string true "Quiz session ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/quiz/sessions/{id} [get]
func (ctrl *QuizController) GetSession(c *gin.Context) {
	state, err := ctrl.Quiz.State(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusOK, "Quiz state retrieved", state)
}

// Answer godoc
// @Summary Answer question
// @Description Records or replaces the answer to one question.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param id path string true "Quiz session ID"
// @Param request body models.QuizAnswerRequest true "Answer"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/quiz/sessions/{id}/answers [put]
func (ctrl *QuizController) Answer(c *gin.Context) {
	var req models.QuizAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	state, err := ctrl.Quiz.Answer(c.Request.Context(), c.Param("id"), req.QuestionID, req.Value)
	if err != nil {
		respondError(c, err, state)
		return
	}
	respondOK(c, http.StatusOK, "Answer recorded", state)
}

// Advance godoc
// @Summary Next question
// @Description Moves forward. On the last question the quiz resolves and the result is stored.
// @Tags Quiz
// @Produce json
// @Param id path string true "Quiz session ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/quiz/sessions/{id}/advance [post]
func (ctrl *QuizController) Advance(c *gin.Context) {
	state, err := ctrl.Quiz.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, state)
		return
	}
	respondOK(c, http.StatusOK, "Quiz advanced", state)
}

// Back godoc
// @Summary Previous question
// @Tags Quiz
// @Produce json
// @Param id path string true "Quiz session ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/quiz/sessions/{id}/back [post]
func (ctrl *QuizController) Back(c *gin.Context) {
	state, err := ctrl.Quiz.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusOK, "Quiz moved back", state)
}

// Reset godoc
// @Summary Retake quiz
// @Description Clears all answers and returns to the first question. The last stored result stays readable.
// @Tags Quiz
// @Produce json
// @Param id path string true "Quiz session ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/quiz/sessions/{id} [delete]
func (ctrl *QuizController) Reset(c *gin.Context) {
	state, err := ctrl.Quiz.Reset(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusOK, "Quiz reset", state)
}

// GetResult godoc
// @Summary Quiz result
// @Description Stored answers, their descriptions and the recommendation.
// @Tags Quiz
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/quiz/results/{sessionId} [get]
func (ctrl *QuizController) GetResult(c *gin.Context) {
	result, err := ctrl.Quiz.Result(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusOK, "Quiz result retrieved", result)
}
