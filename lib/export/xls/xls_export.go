package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	interviewapimodels "talenttrek-backend/models/api/interview"
)

const QuestionsSheet = "Questions"

type Provider interface {
	ExportQuestions(jobTitle string, list []interviewapimodels.QuestionAnswer) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var questionColumns = []column{
	{title: "#", width: 6},
	{title: "Question", width: 60},
	{title: "Answer", width: 90},
}

func (i impl) ExportQuestions(jobTitle string, list []interviewapimodels.QuestionAnswer) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 1
	if err := writeColumn(f, sheet, 1, row, jobTitle); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования названия должности в xlsx")
	}
	row, err := writeHeader(f, sheet, row, questionColumns)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		if _, err = writeQuestionData(f, sheet, list, row); err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	if err = f.SetSheetName(sheet, QuestionsSheet); err != nil {
		return nil, errors.Wrap(err, "ошибка переименования листа в xlsx")
	}
	return f.WriteToBuffer()
}

func writeQuestionData(f *excelize.File, sheet string, list []interviewapimodels.QuestionAnswer, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(questionColumns), row+len(list)); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		if err := writeColumn(f, sheet, 1, row, item.ID); err != nil {
			return row, err
		}
		if err := writeColumn(f, sheet, 2, row, item.Question); err != nil {
			return row, err
		}
		if err := writeColumn(f, sheet, 3, row, item.Answer); err != nil {
			return row, err
		}
	}
	return row, nil
}
