package handler

import (
	"net/http"

	"github.com/lootvault/vaultsim/internal/notify"
)

// HandleGetNotifications returns the player's pending notifications
// @Summary Get notifications
// @Description Returns transient notifications that have not yet auto-dismissed
// @Tags notifications
// @Produce json
// @Success 200 {object} DataResponse
// @Router /notifications [get]
func HandleGetNotifications(center *notify.Center) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{
			Data: center.List(PlayerIDFromRequest(r)),
		})
	}
}

type DismissNotificationRequest struct {
	NotificationID string `json:"notification_id" validate:"required,max=100"`
}

// HandleDismissNotification removes a notification before its timeout
// @Summary Dismiss a notification
// @Description Removes the notification immediately instead of waiting for auto-dismiss
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body DismissNotificationRequest true "Notification to dismiss"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /notifications/dismiss [post]
func HandleDismissNotification(center *notify.Center) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DismissNotificationRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Dismiss notification"); err != nil {
			return
		}

		center.Dismiss(PlayerIDFromRequest(r), req.NotificationID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgNotificationDismissed})
	}
}
