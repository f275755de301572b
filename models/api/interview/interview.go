package interviewapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

const QuestionCount = 10

var ErrEmptyJobTitle = errors.New("не указана должность")

type GenerateQuestionsRequest struct {
	JobTitle string `json:"jobTitle"` // Должность, для которой генерируются вопросы
}

func (r GenerateQuestionsRequest) Validate() error {
	if len(strings.TrimSpace(r.JobTitle)) == 0 {
		return ErrEmptyJobTitle
	}
	return nil
}

type QuestionAnswer struct {
	ID       int64  `json:"id"`       // Номер вопроса, ожидается 1..10
	Question string `json:"question"` // Текст вопроса
	Answer   string `json:"answer"`   // Краткий ответ
}

type GenerateQuestionsResponse struct {
	Questions []QuestionAnswer `json:"questions"`
}
