// Package app wires the SmartDraft services over one session database.
// Both front ends (CLI and MCP server) operate through an App.
package app

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/softco/smartdraft/internal/audit"
	"github.com/softco/smartdraft/internal/config"
	"github.com/softco/smartdraft/internal/contract"
	"github.com/softco/smartdraft/internal/db"
	"github.com/softco/smartdraft/internal/deal"
	"github.com/softco/smartdraft/internal/focus"
	"github.com/softco/smartdraft/internal/ocr"
	"github.com/softco/smartdraft/internal/redline"
	"github.com/softco/smartdraft/internal/session"
)

// App holds the wired services for one session.
type App struct {
	BaseDir string
	Config  *config.Config
	DB      *sql.DB

	Index    *contract.Index
	Audit    *audit.Log
	Focus    *focus.Store
	Session  *session.Tracker
	Redlines *redline.Service
	OCR      *ocr.Importer
	Deals    *deal.Generator
}

// DefaultBaseDir returns ~/.smartdraft, falling back to .smartdraft in
// the working directory when the home directory cannot be determined.
func DefaultBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".smartdraft"
	}
	return filepath.Join(home, ".smartdraft")
}

// Init opens the session database under baseDir and wires every
// service. The baseDir parameter allows tests to use t.TempDir().
func Init(baseDir string) (*App, error) {
	cfg, err := config.Load(baseDir)
	if err != nil {
		return nil, err
	}

	database, err := db.Init(baseDir)
	if err != nil {
		return nil, err
	}
	db.ConfigurePool(database, cfg)

	auditLog := audit.NewLog(database)
	focusStore := focus.NewStore(database, auditLog, cfg.MaxNoteChars)
	tracker := session.NewTracker(database, auditLog)

	return &App{
		BaseDir:  baseDir,
		Config:   cfg,
		DB:       database,
		Index:    contract.NewIndex(),
		Audit:    auditLog,
		Focus:    focusStore,
		Session:  tracker,
		Redlines: redline.NewService(auditLog, tracker),
		OCR:      ocr.NewImporter(focusStore, auditLog, tracker),
		Deals:    deal.NewGenerator(deal.NewValidator(), auditLog),
	}, nil
}

// Close releases the database handle.
func (a *App) Close() error {
	return a.DB.Close()
}
