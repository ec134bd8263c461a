package catalog

import "errors"

var (
	ErrServiceNotFound   = errors.New("service not found")
	ErrServiceExists     = errors.New("service already exists")
	ErrServiceProtected  = errors.New("the TODO service cannot be removed")
	ErrReferenceNotFound = errors.New("reference not found")
	ErrReferenceExists   = errors.New("reference already exists")
	ErrProviderNotFound  = errors.New("provider not found")
	ErrProviderExists    = errors.New("provider already exists")
)
