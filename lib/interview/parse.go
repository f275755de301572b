package interviewhandler

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/pkg/errors"
	interviewapimodels "talenttrek-backend/models/api/interview"
)

const (
	NoQuestionText = "No question provided"
	NoAnswerText   = "No answer provided"
)

// sanitize убирает markdown-ограждения и переводы строк из ответа ИИ.
// Замены выполняются последовательно, порядок важен
func sanitize(raw string) string {
	text := strings.ReplaceAll(raw, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.ReplaceAll(text, "\n", "")
	return strings.TrimSpace(text)
}

func parseQuestions(raw string) ([]interviewapimodels.QuestionAnswer, error) {
	text := sanitize(raw)

	var payload any
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, newError(UpstreamFormatError, errors.Wrap(err, "ответ ИИ не является корректным JSON"))
	}

	items, ok := payload.([]any)
	if !ok {
		return nil, newError(UpstreamShapeError, errors.New("ответ ИИ не является массивом"))
	}
	if len(items) != interviewapimodels.QuestionCount {
		return nil, newError(UpstreamShapeError,
			errors.Errorf("ожидалось %d вопросов, получено %d", interviewapimodels.QuestionCount, len(items)))
	}

	result := make([]interviewapimodels.QuestionAnswer, 0, len(items))
	for idx, item := range items {
		if item == nil {
			return nil, newError(UpstreamShapeError, errors.Errorf("элемент %d ответа ИИ равен null", idx))
		}
		result = append(result, normalizeQuestion(item, idx+1))
	}
	return result, nil
}

// normalizeQuestion подставляет значения по умолчанию вместо отсутствующих, нулевых и пустых полей
func normalizeQuestion(item any, position int) interviewapimodels.QuestionAnswer {
	rec := interviewapimodels.QuestionAnswer{
		ID:       int64(position),
		Question: NoQuestionText,
		Answer:   NoAnswerText,
	}
	fields, ok := item.(map[string]any)
	if !ok {
		return rec
	}
	if id, ok := fields["id"].(float64); ok && validID(id) {
		rec.ID = int64(id)
	}
	if question, ok := fields["question"].(string); ok && question != "" {
		rec.Question = question
	}
	if answer, ok := fields["answer"].(string); ok && answer != "" {
		rec.Answer = answer
	}
	return rec
}

// validID отсекает нулевые, дробные и не представимые в int64 значения
func validID(id float64) bool {
	return id != 0 && id == math.Trunc(id) && id >= math.MinInt64 && id < math.MaxInt64
}
