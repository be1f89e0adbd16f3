package flashcard

import "errors"

var (
	ErrFlashcardNotFound = errors.New("flashcard not found")
	ErrEmptyQuestion     = errors.New("question is required")
	ErrEmptyAnswer       = errors.New("answer is required")
)
