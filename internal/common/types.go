package common

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// NotificationDetails is the opaque per-type display payload. It is stored
// as JSON alongside the notification and interpreted by the notifiable
// type's renderer, never by this service.
type NotificationDetails map[string]interface{}

func (d NotificationDetails) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

func (d *NotificationDetails) Scan(value interface{}) error {
	if value == nil {
		*d = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("unsupported details column type %T", value)
	}
}

// ReadStateEvent is broadcast to a user's other live sessions after a bulk
// read-state update. IDs carries the requested ids verbatim, not just the
// ids that actually matched a row.
type ReadStateEvent struct {
	UserID uint64   `json:"user_id"`
	IDs    []uint64 `json:"ids"`
}

type NotificationResponse struct {
	ID           uint64              `json:"id"`
	Name         string              `json:"name"`
	CreatedAt    time.Time           `json:"created_at"`
	ObjectType   string              `json:"object_type"`
	ObjectID     uint64              `json:"object_id"`
	SourceUserID *uint64             `json:"source_user_id"`
	IsRead       bool                `json:"is_read"`
	Details      NotificationDetails `json:"details"`
}

// StackCursor resumes pagination through one stack: fetch members with
// id strictly below ID for the identified (object_type, object_id, name).
type StackCursor struct {
	ID         uint64 `json:"id"`
	ObjectType string `json:"object_type"`
	ObjectID   uint64 `json:"object_id"`
	Name       string `json:"name"`
}

type StackSummary struct {
	Name       string      `json:"name"`
	ObjectType string      `json:"object_type"`
	ObjectID   uint64      `json:"object_id"`
	Total      int64       `json:"total"`
	Cursor     StackCursor `json:"cursor"`
}

// TypeCursor resumes the group listing of one notifiable type.
type TypeCursor struct {
	ID uint64 `json:"id"`
}

type TypeSummary struct {
	Name   string      `json:"name"`
	Total  int64       `json:"total"`
	Cursor *TypeCursor `json:"cursor,omitempty"`
}
