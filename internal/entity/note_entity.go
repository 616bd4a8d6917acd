package entity

import (
	"time"
)

// Note is the domain representation of a stored note. The Id is assigned by
// the store on first save and is stable for the lifetime of the record.
type Note struct {
	Id         int64
	Title      string
	Content    string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	OwnerName  string
	OwnerEmail string
}
