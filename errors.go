package hub

import "errors"

var (
	// ErrNotFound is returned when a requested post or draft does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDraftNotRemoved is returned by Publish when the post was published but
	// the source draft could not be deleted afterwards.
	ErrDraftNotRemoved = errors.New("published, but the draft could not be removed")

	// ErrNotImage is returned by IngestImage for content that is not an image.
	ErrNotImage = errors.New("please select an image file")

	// ErrImageTooLarge is returned by IngestImage for content over the size ceiling.
	ErrImageTooLarge = errors.New("image size should be less than 5MB")
)
