package database

import (
	"context"
	"fmt"

	"github.com/standupbot/slack-standup-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db          *DB
	standupRepo contract.StandupRepo
	responses   contract.ResponseRepo
	oooRepo     contract.OOORepo
	holidayRepo contract.HolidayRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := &instance{db: db}
	i.standupRepo = newStandupRepo(db.conn)
	i.responses = newResponseRepo(db.conn)
	i.oooRepo = newOOORepo(db.conn)
	i.holidayRepo = newHolidayRepo(db.conn)
	return i
}

// repoInstancesWithConn creates repository instances bound to a transaction
func repoInstancesWithConn(conn dbConn) *instance {
	return &instance{
		standupRepo: newStandupRepo(conn),
		responses:   newResponseRepo(conn),
		oooRepo:     newOOORepo(conn),
		holidayRepo: newHolidayRepo(conn),
	}
}

func (i *instance) Standup() contract.StandupRepo { return i.standupRepo }

func (i *instance) Response() contract.ResponseRepo { return i.responses }

func (i *instance) OOO() contract.OOORepo { return i.oooRepo }

func (i *instance) Holiday() contract.HolidayRepo { return i.holidayRepo }

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
