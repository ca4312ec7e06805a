package v1

import (
	"context"
	"net/http"

	"recruitment-portal-backend/internal/delivery/http/response"
	"recruitment-portal-backend/internal/domain"
	"recruitment-portal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
}

// NewInterviewHandler registers interview scheduling routes
func NewInterviewHandler(r *gin.RouterGroup, interviewUC domain.InterviewUsecase) {
	handler := &InterviewHandler{interviewUC: interviewUC}

	interviews := r.Group("/interviews")
	{
		// Recruiter routes
		interviews.POST("/schedule", handler.Schedule)
		interviews.PUT("/reschedule/:applicationId", handler.Reschedule)
		interviews.PUT("/cancel/:applicationId", handler.CancelByRecruiter)
		interviews.POST("/slots/:interviewId", handler.OfferSlots)

		// Candidate routes
		interviews.GET("/slots/:applicationId", handler.ListSlots)
		interviews.PUT("/slots/select/:slotId", handler.SelectSlot)
		interviews.PUT("/cancel-by-candidate/:applicationId", handler.CancelByCandidate)
	}
}

// Schedule godoc
// @Summary      Schedule an interview
// @Description  Create the interview for a shortlisted application, either with a fixed datetime (direct) or deferring the time to candidate slot selection (slot_offer). Recruiter only.
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ScheduleInterviewInput  true  "Scheduling request"
// @Success      201   {object}  response.Response{data=domain.Interview}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /interviews/schedule [post]
// @Security     BearerAuth
func (h *InterviewHandler) Schedule(c *gin.Context) {
	var input domain.ScheduleInterviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	iv, err := h.interviewUC.Schedule(c.Request.Context(), &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Interview scheduled successfully", iv)
}

// RescheduleRequest is the request payload for rescheduling an interview
type RescheduleRequest struct {
	NewScheduledAt string `json:"new_scheduled_at" binding:"required"`
}

// Reschedule godoc
// @Summary      Reschedule an interview
// @Description  Move an interview-stage application's interview to a new datetime (Recruiter only)
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        applicationId  path      string             true  "Application ID"
// @Param        body           body      RescheduleRequest  true  "New datetime"
// @Success      200  {object}  response.Response{data=domain.Interview}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /interviews/reschedule/{applicationId} [put]
// @Security     BearerAuth
func (h *InterviewHandler) Reschedule(c *gin.Context) {
	applicationID, err := uuid.Parse(c.Param("applicationId"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	iv, err := h.interviewUC.Reschedule(c.Request.Context(), applicationID, req.NewScheduledAt)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview rescheduled successfully", iv)
}

// CancelByRecruiter godoc
// @Summary      Cancel an interview (recruiter)
// @Description  Cancel the interview and reject the application (Recruiter only)
// @Tags         interviews
// @Produce      json
// @Param        applicationId  path      string  true  "Application ID"
// @Success      200  {object}  response.Response{data=domain.Interview}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/cancel/{applicationId} [put]
// @Security     BearerAuth
func (h *InterviewHandler) CancelByRecruiter(c *gin.Context) {
	h.cancel(c, h.interviewUC.CancelByRecruiter)
}

func (h *InterviewHandler) cancel(c *gin.Context, cancelFn func(ctx context.Context, applicationID uuid.UUID) (*domain.Interview, error)) {
	applicationID, err := uuid.Parse(c.Param("applicationId"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	iv, err := cancelFn(c.Request.Context(), applicationID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview cancelled successfully", iv)
}

// CancelByCandidate godoc
// @Summary      Cancel an interview (candidate)
// @Description  Cancel your own interview; the application is rejected (Candidate only)
// @Tags         interviews
// @Produce      json
// @Param        applicationId  path      string  true  "Application ID"
// @Success      200  {object}  response.Response{data=domain.Interview}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/cancel-by-candidate/{applicationId} [put]
// @Security     BearerAuth
func (h *InterviewHandler) CancelByCandidate(c *gin.Context) {
	h.cancel(c, h.interviewUC.CancelByCandidate)
}

// OfferSlotsRequest is the request payload for offering a slot batch
type OfferSlotsRequest struct {
	InterviewDate string             `json:"interview_date" binding:"required"`
	Slots         []domain.SlotInput `json:"slots"`
}

// OfferSlots godoc
// @Summary      Offer interview slots
// @Description  Replace the interview's slot batch with new wall-clock windows on the given date (Recruiter only). Offers are a full overwrite.
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        interviewId  path      string             true  "Interview ID"
// @Param        body         body      OfferSlotsRequest  true  "Slot batch"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/slots/{interviewId} [post]
// @Security     BearerAuth
func (h *InterviewHandler) OfferSlots(c *gin.Context) {
	interviewID, err := uuid.Parse(c.Param("interviewId"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid interview ID"))
		return
	}

	var req OfferSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.interviewUC.OfferSlots(c.Request.Context(), interviewID, req.InterviewDate, req.Slots); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview slots sent to candidate", nil)
}

// ListSlots godoc
// @Summary      List offered interview slots
// @Description  List the slots offered for your application's interview (Candidate only)
// @Tags         interviews
// @Produce      json
// @Param        applicationId  path      string  true  "Application ID"
// @Success      200  {object}  response.Response{data=[]domain.InterviewSlot}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/slots/{applicationId} [get]
// @Security     BearerAuth
func (h *InterviewHandler) ListSlots(c *gin.Context) {
	applicationID, err := uuid.Parse(c.Param("applicationId"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	slots, err := h.interviewUC.ListSlots(c.Request.Context(), applicationID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview slots retrieved", slots)
}

// SelectSlot godoc
// @Summary      Select an interview slot
// @Description  Confirm one offered slot as the interview time (Candidate only). Fails once the interview is confirmed.
// @Tags         interviews
// @Produce      json
// @Param        slotId  path      string  true  "Slot ID"
// @Success      200  {object}  response.Response{data=domain.Interview}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /interviews/slots/select/{slotId} [put]
// @Security     BearerAuth
func (h *InterviewHandler) SelectSlot(c *gin.Context) {
	slotID, err := uuid.Parse(c.Param("slotId"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid slot ID"))
		return
	}

	iv, err := h.interviewUC.SelectSlot(c.Request.Context(), slotID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview slot confirmed successfully", iv)
}
