package xlsexport

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	interviewapimodels "talenttrek-backend/models/api/interview"
)

func TestExportQuestions(t *testing.T) {
	NewHandler()
	list := []interviewapimodels.QuestionAnswer{
		{ID: 1, Question: "What is a goroutine?", Answer: "A lightweight thread."},
		{ID: 2, Question: "What is a channel?", Answer: "A typed conduit between goroutines."},
	}
	buf, err := Instance.ExportQuestions("Backend Engineer", list)
	require.Nil(t, err)

	f, err := excelize.OpenReader(buf)
	require.Nil(t, err)
	defer f.Close()

	require.Equal(t, []string{QuestionsSheet}, f.GetSheetList())
	rows, err := f.GetRows(QuestionsSheet)
	require.Nil(t, err)
	require.Len(t, rows, 4)
	require.Equal(t, []string{"Backend Engineer"}, rows[0])
	require.Equal(t, []string{"#", "Question", "Answer"}, rows[1])
	require.Equal(t, []string{"1", "What is a goroutine?", "A lightweight thread."}, rows[2])
	require.Equal(t, []string{"2", "What is a channel?", "A typed conduit between goroutines."}, rows[3])
}
