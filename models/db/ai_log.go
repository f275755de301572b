package dbmodels

import "time"

// AiLog журнал обращений к ИИ. Текст вопросов и сырой ответ ИИ не сохраняются
type AiLog struct {
	ID         string        `gorm:"primaryKey;default:uuid_generate_v4()" json:"id"`
	CreatedAt  time.Time     `gorm:"index" json:"created_at"`
	JobTitle   string        `gorm:"type:varchar(255)" comment:"Должность из запроса"`
	ReqestType AiReqestType  `gorm:"type:varchar(255)" comment:"Тип запроса к ИИ"`
	AiName     AiName        `gorm:"type:varchar(255)" comment:"Название ИИ"`
	Model      string        `gorm:"type:varchar(255)" comment:"Модель ИИ"`
	Status     AiLogStatus   `gorm:"type:varchar(32)" comment:"Результат обработки"`
	ErrorKind  string        `gorm:"type:varchar(64)" comment:"Тип ошибки"`
	Duration   time.Duration `comment:"Длительность обработки"`
}

type AiName string

const (
	AiGeminiType AiName = "gemini"
	AiYaGptType  AiName = "yandexgpt"
)

type AiReqestType string

const (
	AiInterviewQuestionsType AiReqestType = "InterviewQuestions"
)

type AiLogStatus string

const (
	AiLogSuccess AiLogStatus = "success"
	AiLogFail    AiLogStatus = "fail"
)
