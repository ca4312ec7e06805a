package v1

import (
	"net/http"

	"recruitment-portal-backend/internal/delivery/http/response"
	"recruitment-portal-backend/internal/domain"
	"recruitment-portal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type InterviewerHandler struct {
	interviewerUC domain.InterviewerUsecase
}

// NewInterviewerHandler registers interviewer directory routes. Listing is
// open to any authenticated user; additions are recruiter only.
func NewInterviewerHandler(r *gin.RouterGroup, interviewerUC domain.InterviewerUsecase) {
	handler := &InterviewerHandler{interviewerUC: interviewerUC}

	interviewers := r.Group("/interviewers")
	{
		interviewers.GET("", handler.List)
		interviewers.POST("", handler.Create)
	}
}

// List godoc
// @Summary      List interviewers
// @Tags         interviewers
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Interviewer}
// @Failure      403  {object}  response.Response
// @Router       /interviewers [get]
// @Security     BearerAuth
func (h *InterviewerHandler) List(c *gin.Context) {
	interviewers, err := h.interviewerUC.ListInterviewers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interviewers retrieved", interviewers)
}

// CreateInterviewerRequest is the request payload for adding an interviewer
type CreateInterviewerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// Create godoc
// @Summary      Add an interviewer
// @Tags         interviewers
// @Accept       json
// @Produce      json
// @Param        body  body      CreateInterviewerRequest  true  "Interviewer details"
// @Success      201  {object}  response.Response{data=domain.Interviewer}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /interviewers [post]
// @Security     BearerAuth
func (h *InterviewerHandler) Create(c *gin.Context) {
	var req CreateInterviewerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	interviewer, err := h.interviewerUC.CreateInterviewer(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Interviewer added", interviewer)
}
