package pdfexport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	interviewapimodels "talenttrek-backend/models/api/interview"
)

func TestGenerateQuestions(t *testing.T) {
	t.Run(`latin text`, func(t *testing.T) {
		list := []interviewapimodels.QuestionAnswer{
			{ID: 1, Question: "What is a goroutine?", Answer: "A lightweight thread managed by the Go runtime."},
			{ID: 2, Question: "Café or tea?", Answer: "Non-ASCII text must not break the document."},
		}
		body, err := GenerateQuestions("Backend Engineer", list)
		require.Nil(t, err)
		require.True(t, bytes.HasPrefix(body, []byte("%PDF")))
	})

	t.Run(`cyrillic text`, func(t *testing.T) {
		list := []interviewapimodels.QuestionAnswer{
			{ID: 1, Question: "Что такое горутина?", Answer: "Легковесный поток, которым управляет рантайм Go."},
		}
		body, err := GenerateQuestions("Бэкенд разработчик", list)
		require.Nil(t, err)
		require.True(t, bytes.HasPrefix(body, []byte("%PDF")))
		require.Contains(t, string(body), "DejaVu")
	})

	t.Run(`empty list`, func(t *testing.T) {
		body, err := GenerateQuestions("Empty", nil)
		require.Nil(t, err)
		require.True(t, bytes.HasPrefix(body, []byte("%PDF")))
	})
}
