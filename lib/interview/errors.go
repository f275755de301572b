package interviewhandler

import (
	"github.com/pkg/errors"
)

type ErrorKind string

const (
	// InvalidRequest не передана должность
	InvalidRequest ErrorKind = "InvalidRequest"
	// UpstreamInvocationError ошибка вызова ИИ (сеть, авторизация, квота)
	UpstreamInvocationError ErrorKind = "UpstreamInvocationError"
	// UpstreamFormatError ответ ИИ не является JSON после очистки
	UpstreamFormatError ErrorKind = "UpstreamFormatError"
	// UpstreamShapeError JSON не является массивом из QuestionCount элементов
	UpstreamShapeError ErrorKind = "UpstreamShapeError"
)

type GenerationError struct {
	Kind ErrorKind
	Err  error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, err error) *GenerationError {
	return &GenerationError{Kind: kind, Err: err}
}

// KindOf возвращает тип ошибки генерации, либо пустую строку для прочих ошибок
func KindOf(err error) ErrorKind {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	return ""
}
