package entity

import "time"

// StoredObject is a raw listing entry from the object store.
type StoredObject struct {
	Key          string
	Size         int64
	LastModified *time.Time
}
