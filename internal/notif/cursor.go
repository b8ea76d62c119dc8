package notif

import (
	"net/url"
	"strconv"
)

// Cursor is the flat pagination token carried in cursor.* query params.
// Which fields are present selects the response mode: all three of
// object_type, object_id and name pin a single stack (drill mode),
// anything less falls back to the multi-type bundle.
type Cursor struct {
	ID         uint64
	ObjectType string
	ObjectID   uint64
	Name       string

	hasObjectID bool
}

// ParseCursor reads the cursor.* query params. Malformed numbers are
// treated as absent rather than rejected.
func ParseCursor(values url.Values) Cursor {
	c := Cursor{
		ObjectType: values.Get("cursor.object_type"),
		Name:       values.Get("cursor.name"),
	}
	if raw := values.Get("cursor.id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			c.ID = id
		}
	}
	if raw := values.Get("cursor.object_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			c.ObjectID = id
			c.hasObjectID = true
		}
	}
	return c
}

// Drill reports whether the cursor identifies one stack.
func (c Cursor) Drill() bool {
	return c.ObjectType != "" && c.Name != "" && c.hasObjectID
}
