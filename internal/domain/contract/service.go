package contract

import (
	"context"

	"github.com/standupbot/slack-standup-bot/internal/domain/entity"
)

// StandupService is the surface consumed by the command layer.
type StandupService interface {
	CreateStandup(ctx context.Context, standup *entity.Standup) error
	GetStandup(standupID int64) (*entity.Standup, error)
	GetStandupByChannel(slackChannelID string) (*entity.Standup, error)
	UpdateConfig(ctx context.Context, standupID int64, configType, configValue string) error
	AddParticipant(ctx context.Context, standupID int64, slackUserID string) error
	RemoveParticipant(ctx context.Context, standupID int64, slackUserID string) error
	RecordResponse(ctx context.Context, standupID int64, slackUserID, content string) error
	GetResponses(standupID int64, date string) ([]*entity.Response, error)

	Activate(ctx context.Context, standupID int64) error
	Deactivate(ctx context.Context, standupID int64) error
	Reconfigure(ctx context.Context, standupID int64) error

	CheckScheduleConflicts(standupID int64, startDate, endDate string) (*entity.ConflictReport, error)
	AddUserOOO(ctx context.Context, slackUserID, startDate, endDate, reason string) (*entity.OOOPeriod, error)
	RemoveUserOOO(ctx context.Context, slackUserID, startDate, endDate string) error
	AddCustomHoliday(ctx context.Context, date, name string) error

	NextRun(standupID int64) (string, bool)
}

// SummaryGenerator turns a day's structured responses into summary prose.
// Implementations may fail (e.g. an AI backend being down); callers fall
// back to a deterministic manual summary.
type SummaryGenerator interface {
	Summarize(ctx context.Context, standupName string, responses []*entity.Response) (string, error)
}
