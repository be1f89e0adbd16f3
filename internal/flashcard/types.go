package flashcard

type CreateInput struct {
	Question string
	Answer   string
}
