// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

// Package store implements the persistence layer on PostgreSQL via GORM.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/projectly/meeting-service/internal/domain"
	"github.com/projectly/meeting-service/internal/domain/models"
)

// Config holds the database connection settings.
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open connects to PostgreSQL and migrates the schema.
func Open(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("accessing database pool: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.AutoMigrate(
		&models.Meeting{},
		&models.RecurringMeetingPattern{},
		&models.RecurringMeetingException{},
		&models.MeetingMember{},
		&models.ProjectPrivilege{},
		&models.OrganizationMember{},
		&models.MemberPushToken{},
	); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	slog.Info("database connected and migrated")
	return db, nil
}

// GormUnitOfWork runs callbacks inside one database transaction, handing
// them repositories bound to that transaction.
type GormUnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a GormUnitOfWork over the given connection.
func NewUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// Ensure [GormUnitOfWork] implements [domain.UnitOfWork].
var _ domain.UnitOfWork = (*GormUnitOfWork)(nil)

// Execute runs fn inside a transaction; any error rolls it back.
func (u *GormUnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context, repos *domain.Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, newRepositories(tx))
	})
}

// Repos returns repositories bound to the base connection for reads
// outside a transaction.
func (u *GormUnitOfWork) Repos() *domain.Repositories {
	return newRepositories(u.db)
}

func newRepositories(db *gorm.DB) *domain.Repositories {
	return &domain.Repositories{
		Meetings:   &meetingRepository{db: db},
		Patterns:   &patternRepository{db: db},
		Members:    &memberRepository{db: db},
		Privileges: &privilegeRepository{db: db},
		Directory:  &memberDirectory{db: db},
	}
}
