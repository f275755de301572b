package ailogstore

import (
	"context"

	dbmodels "talenttrek-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Save(ctx context.Context, rec dbmodels.AiLog) (string, error)
}

func NewInstance(DB *gorm.DB) Provider {
	if DB == nil {
		return noop{}
	}
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(ctx context.Context, rec dbmodels.AiLog) (string, error) {
	err := i.db.
		WithContext(ctx).
		Create(&rec).
		Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения записи журнала ИИ")
	}
	return rec.ID, nil
}

// noop используется когда БД отключена
type noop struct{}

func (noop) Save(_ context.Context, _ dbmodels.AiLog) (string, error) {
	return "", nil
}
