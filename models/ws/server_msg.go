package wsmodels

import (
	"time"

	dbmodels "job-portal-backend/models/db"
)

type ServerMessage struct {
	ToUserID string `json:"-"`
	ID       string `json:"id"`
	Time     string `json:"time"` // RFC 3339
	Type     string `json:"type"` // success, info or alert
	Code     string `json:"code"`
	Msg      string `json:"msg"`
}

func NotificationMessage(rec dbmodels.Notification) ServerMessage {
	return ServerMessage{
		ToUserID: rec.UserID,
		ID:       rec.ID,
		Time:     rec.CreatedAt.Format(time.RFC3339),
		Type:     string(rec.Type),
		Code:     string(rec.Code),
		Msg:      rec.Msg,
	}
}
