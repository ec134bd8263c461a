package handler

import "errors"

var (
	errMissingFile    = errors.New("image file or base64 payload required")
	errUnreadableFile = errors.New("could not read uploaded file")
	errInvalidBase64  = errors.New("invalid base64 image payload")
)
