package apperror

import "fmt"

// NotFoundError signals that no record exists under the given key. The error
// handler middleware maps it to a 404 response; everything else stays a
// generic failure.
type NotFoundError struct {
	Resource string
	Key      interface{}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with key: %v", e.Resource, e.Key)
}

func NewNoteNotFound(id int64) *NotFoundError {
	return &NotFoundError{Resource: "note", Key: id}
}

func NewUserNotFound(name string) *NotFoundError {
	return &NotFoundError{Resource: "user", Key: name}
}
