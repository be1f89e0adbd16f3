package repository

import "errors"

var (
	ErrFailedToUpsert = errors.New("failed to upsert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToDelete = errors.New("failed to delete record")
)
