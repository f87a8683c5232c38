package location

import "errors"

var (
	ErrGeoFenceNotFound   = errors.New("location not found")
	ErrGeoFenceNameExists = errors.New("location with this name already exists")
)
