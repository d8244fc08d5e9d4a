package main

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/langdrill/internal/config"
	"github.com/at-ishikawa/langdrill/internal/database"
	"github.com/at-ishikawa/langdrill/internal/practice"
	"github.com/at-ishikawa/langdrill/internal/questiontype"
	"github.com/at-ishikawa/langdrill/internal/word"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// app holds the services a command works with.
type app struct {
	cfg           *config.Config
	db            *sqlx.DB
	words         *word.Service
	questionTypes *questiontype.Service
	practice      *practice.Service
}

func openApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}

	words, err := word.NewService(word.NewDBRepository(db))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("word.NewService() > %w", err)
	}
	questionTypes, err := questiontype.NewService(questiontype.NewDBRepository(db))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("questiontype.NewService() > %w", err)
	}

	return &app{
		cfg:           cfg,
		db:            db,
		words:         words,
		questionTypes: questionTypes,
		practice:      practice.NewService(practice.NewDBRepository(db), questionTypes, words, cfg.Practice.Lookup),
	}, nil
}

func (a *app) Close() {
	_ = a.db.Close()
}

// language is the --language flag, or the configured default.
func (a *app) language() string {
	return currentLanguage(a.cfg)
}

func (a *app) ownerID() (string, error) {
	if a.cfg.User.ID == "" {
		return "", fmt.Errorf("no user configured: set user.id in the config file or LANGDRILL_USER")
	}
	return a.cfg.User.ID, nil
}

func currentLanguage(cfg *config.Config) string {
	if languageFlag.code != "" {
		return languageFlag.code
	}
	return cfg.Practice.DefaultLanguage
}
