package contract

import (
	"context"

	"github.com/standupbot/slack-standup-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Standup() StandupRepo
	Response() ResponseRepo
	OOO() OOORepo
	Holiday() HolidayRepo
}

// StandupRepo defines the contract for the standup configuration repository
type StandupRepo interface {
	Create(standup *entity.Standup) error
	GetByID(id int64) (*entity.Standup, error)
	GetBySlackChannelID(slackChannelID string) (*entity.Standup, error)
	GetActive() ([]*entity.Standup, error)
	Update(standup *entity.Standup) error
	SetActive(id int64, active bool) error
}

// ResponseRepo defines the contract for standup response storage
type ResponseRepo interface {
	Upsert(response *entity.Response) error
	GetByStandupAndDate(standupID int64, date string) ([]*entity.Response, error)
	HasResponded(standupID int64, slackUserID, date string) (bool, error)
}

// OOORepo defines the contract for out-of-office period storage
type OOORepo interface {
	Create(period *entity.OOOPeriod) error
	Delete(id string) error
	GetByUser(slackUserID string) ([]*entity.OOOPeriod, error)
	GetAll() ([]*entity.OOOPeriod, error)
}

// HolidayRepo defines the contract for custom holiday storage
type HolidayRepo interface {
	Upsert(holiday *entity.CustomHoliday) error
	GetAll() ([]*entity.CustomHoliday, error)
}
