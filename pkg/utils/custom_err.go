package utils

import "errors"

var (
	ErrCompanionNotFound   = errors.New("companion not found")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrGroupNotFound       = errors.New("group not found")
	ErrPostNotFound        = errors.New("post not found")
	ErrStoryNotFound       = errors.New("story not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrPollNotFound        = errors.New("poll not found")
	ErrStorageError        = errors.New("storage error")
)

// NotFound reports whether err is one of the lookup miss sentinels.
func NotFound(err error) bool {
	return errors.Is(err, ErrCompanionNotFound) ||
		errors.Is(err, ErrDestinationNotFound) ||
		errors.Is(err, ErrGroupNotFound) ||
		errors.Is(err, ErrPostNotFound) ||
		errors.Is(err, ErrStoryNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrPollNotFound)
}
