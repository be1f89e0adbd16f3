package http

import (
	"github.com/gauravmalhotra04/raiden-ai/internal/flashcard"
	"github.com/gauravmalhotra04/raiden-ai/internal/model"
	"github.com/gauravmalhotra04/raiden-ai/pkg/response"
)

type createReq struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (r createReq) toInput() flashcard.CreateInput {
	return flashcard.CreateInput{Question: r.Question, Answer: r.Answer}
}

type flashcardResp struct {
	ID        string            `json:"id"`
	Question  string            `json:"question"`
	Answer    string            `json:"answer"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newFlashcardResp(f model.Flashcard) flashcardResp {
	return flashcardResp{
		ID:        f.ID,
		Question:  f.Question,
		Answer:    f.Answer,
		CreatedAt: response.DateTime(f.CreatedAt),
	}
}

type listResp struct {
	Flashcards []flashcardResp `json:"flashcards"`
}

func newListResp(cards []model.Flashcard) listResp {
	out := listResp{Flashcards: make([]flashcardResp, 0, len(cards))}
	for _, c := range cards {
		out.Flashcards = append(out.Flashcards, newFlashcardResp(c))
	}
	return out
}
