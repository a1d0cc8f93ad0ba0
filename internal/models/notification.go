package models

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationInfo    NotificationKind = "info"
)

type Notification struct {
	ID      string           `json:"id"`
	Message string           `json:"message"`
	Kind    NotificationKind `json:"kind"`
}
