package pdfexport

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	interviewapimodels "talenttrek-backend/models/api/interview"
)

const fontFamily = "DejaVu"

//go:embed fonts/DejaVuSansCondensed.ttf
var regularFont []byte

//go:embed fonts/DejaVuSansCondensed-Bold.ttf
var boldFont []byte

func GenerateQuestions(jobTitle string, list []interviewapimodels.QuestionAnswer) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateQuestions panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8FontFromBytes(fontFamily, "", regularFont)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", boldFont)
	pdf.SetTitle(fmt.Sprintf("Interview questions: %s", jobTitle), true)
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 16)
	pdf.MultiCell(0, 8, jobTitle, "", "L", false)
	pdf.Ln(4)

	for _, item := range list {
		pdf.SetFont(fontFamily, "B", 12)
		pdf.MultiCell(0, 6, fmt.Sprintf("%d. %s", item.ID, item.Question), "", "L", false)
		pdf.SetFont(fontFamily, "", 11)
		pdf.MultiCell(0, 6, item.Answer, "", "L", false)
		pdf.Ln(3)
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования pdf")
	}
	return buf.Bytes(), nil
}
