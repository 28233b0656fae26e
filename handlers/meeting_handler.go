package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"alexportfolio/models"
	"alexportfolio/repository"

	"github.com/go-playground/validator/v10"
)

type MeetingHandler struct {
	Repo   repository.MeetingRepository
	Logger *slog.Logger
}

type meetingRequest struct {
	Title        string   `json:"title" validate:"required"`
	Date         string   `json:"date" validate:"required"`
	Time         string   `json:"time" validate:"required"`
	Level        string   `json:"level" validate:"required,oneof=Team Department Company"`
	Participants []string `json:"participants" validate:"required,min=1,dive,required,emailshape"`
	Description  string   `json:"description" validate:"required"`
}

// ListMeetings handler: public.
func (h *MeetingHandler) ListMeetings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	meetings, err := h.Repo.ListMeetings(ctx)
	if err != nil {
		h.Logger.Error("failed to list meetings", "error", err)
		writeError(w, http.StatusInternalServerError, "cannot fetch meetings")
		return
	}
	if meetings == nil {
		meetings = []*models.Meeting{}
	}

	writeJSON(w, http.StatusOK, meetings)
}

// CreateMeeting handler: requires an authenticated caller; the creator is
// taken from the token, never from the payload.
func (h *MeetingHandler) CreateMeeting(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	var req meetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	meeting := &models.Meeting{
		Title:        req.Title,
		Date:         req.Date,
		Time:         req.Time,
		Level:        req.Level,
		Participants: req.Participants,
		Description:  req.Description,
		CreatorID:    claims.UserID,
	}

	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	if err := h.Repo.CreateMeeting(ctx, meeting); err != nil {
		h.Logger.Error("failed to create meeting", "error", err)
		writeError(w, http.StatusInternalServerError, "cannot create meeting")
		return
	}

	h.Logger.Info("meeting created", "meeting_id", meeting.ID, "creator_id", claims.UserID)
	writeJSON(w, http.StatusCreated, meeting)
}

// DeleteMeeting handler: admin only; id comes from the URL path.
func (h *MeetingHandler) DeleteMeeting(w http.ResponseWriter, r *http.Request, id string) {
	meetingID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid meeting id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	if err := h.Repo.DeleteMeeting(ctx, meetingID); err != nil {
		if errors.Is(err, repository.ErrMeetingNotFound) {
			writeError(w, http.StatusNotFound, "meeting not found")
			return
		}
		h.Logger.Error("failed to delete meeting", "meeting_id", meetingID, "error", err)
		writeError(w, http.StatusInternalServerError, "cannot delete meeting")
		return
	}

	h.Logger.Info("meeting deleted", "meeting_id", meetingID)
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// validationMessage turns the first failed field into the short string the
// frontend surfaces in-form.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "Participants":
			return "participants must be a non-empty list of valid email addresses"
		case "Level":
			return "level must be Team, Department or Company"
		}
	}
	return "all fields are required"
}
