package attendance

import "errors"

var (
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrInvalidDate    = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidStatus  = errors.New("status must be present, absent or late")
	ErrInvalidMonth   = errors.New("invalid year or month")
	ErrInvalidFormat  = errors.New("format must be csv or json")
)
