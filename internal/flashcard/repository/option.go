package repository

// CreateFlashcardOptions holds parameters for inserting a new Flashcard.
type CreateFlashcardOptions struct {
	Question string
	Answer   string
}
