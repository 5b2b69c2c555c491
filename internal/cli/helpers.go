package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/runnerr0/lifelog/internal/clock"
	"github.com/runnerr0/lifelog/internal/config"
	"github.com/runnerr0/lifelog/internal/logging"
	"github.com/runnerr0/lifelog/internal/storage"
)

// session bundles everything a command needs for one invocation.
type session struct {
	store     *storage.SQLiteStore
	cfg       *config.Config
	log       *slog.Logger
	logCloser io.Closer
}

func (s *session) Close() error {
	err := s.store.Close()
	s.logCloser.Close()
	return err
}

// loadConfig resolves the config file. Priority: --config flag > lifelog.yaml
// next to the executable > defaults.
func loadConfig(globals *GlobalFlags, baseDir string) (*config.Config, error) {
	if globals.Config != "" {
		return config.Load(globals.Config)
	}
	return config.LoadIfExists(filepath.Join(baseDir, config.DefaultConfigFile))
}

// resolveDBPath determines the SQLite database file path.
// Priority: --db flag > config file > life_log.db next to the executable.
func resolveDBPath(globals *GlobalFlags, cfg *config.Config, baseDir string) (string, error) {
	if globals.DB != "" {
		return globals.DB, nil
	}

	dbPath, err := cfg.DatabasePath(baseDir)
	if err != nil {
		return "", err
	}

	if cfg.Storage.Path != "" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return "", fmt.Errorf("create database directory: %w", err)
		}
	}
	return dbPath, nil
}

func newLogger(globals *GlobalFlags, cfg *config.Config, baseDir string) (*slog.Logger, io.Closer, error) {
	if globals.Verbose {
		return logging.NewWithWriter(os.Stderr, slog.LevelDebug), nopCloser{}, nil
	}

	file, err := cfg.LogFilePath(baseDir)
	if err != nil {
		return nil, nil, err
	}

	return logging.New(logging.Options{
		Level: cfg.Logging.Level,
		RotationConfig: logging.RotationConfig{
			File:       file,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
		},
	})
}

// openSession loads config, sets up logging and opens the journal store.
func openSession(globals *GlobalFlags, clk clock.Clock) (*session, error) {
	baseDir, err := config.ExecutableDir()
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig(globals, baseDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, logCloser, err := newLogger(globals, cfg, baseDir)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	dbPath, err := resolveDBPath(globals, cfg, baseDir)
	if err != nil {
		logCloser.Close()
		return nil, err
	}

	store, err := storage.Open(dbPath, storage.Options{Clock: clk, Logger: logger})
	if err != nil {
		logger.Error("open store failed", "path", dbPath, "error", err)
		logCloser.Close()
		return nil, fmt.Errorf("opening database: %w", err)
	}

	return &session{store: store, cfg: cfg, log: logger, logCloser: logCloser}, nil
}

// normalizeInput puts user-typed text into NFC so composed and decomposed
// spellings of the same characters store and search identically.
func normalizeInput(s string) string {
	return norm.NFC.String(strings.TrimRight(s, "\r\n"))
}

// parseEventID validates an ID typed by the user. Full-width digits from an
// IME are folded to ASCII; anything other than digits is rejected.
func parseEventID(s string) (int64, error) {
	folded := norm.NFKC.String(strings.TrimSpace(s))
	if folded == "" {
		return 0, fmt.Errorf("ID must be a number: %q", s)
	}
	for _, r := range folded {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("ID must be a number: %q", s)
		}
	}

	id, err := strconv.ParseInt(folded, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("ID out of range: %q", s)
	}
	return id, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func clockOrSystem(c clock.Clock) clock.Clock {
	if c == nil {
		return clock.System()
	}
	return c
}
