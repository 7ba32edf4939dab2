// main is the entry point of the Student Management console.
//
// STARTUP SEQUENCE:
//  1. Load configuration (flag, CONFIG_PATH, or environment defaults)
//  2. Initialise the logger
//  3. Open the storage backend (text file or SQLite)
//  4. Load the roster into the record store (corruption → empty roster)
//  5. Run the numbered menu until Exit, end of input, or an OS signal
//  6. Save the roster back to storage
//
// RUNNING:
//
//	go run ./cmd/students --config=config/local.yaml
//	go run ./cmd/students list
//	STORAGE_BACKEND=sqlite STORAGE_PATH=students.db go run ./cmd/students stats
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/students/internal/config"
	"github.com/aanand-mishra/students/internal/console"
	"github.com/aanand-mishra/students/internal/console/handlers/student"
	"github.com/aanand-mishra/students/internal/records"
	"github.com/aanand-mishra/students/internal/storage"
	"github.com/aanand-mishra/students/internal/storage/sqlite"
	"github.com/aanand-mishra/students/internal/storage/textfile"
	"github.com/aanand-mishra/students/internal/utils/response"
)

const version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra has already printed the error.
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFlag string

	root := &cobra.Command{
		Use:          "students",
		Short:        "Manage a roster of student records from the console",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd, configFlag)
			if err != nil {
				return err
			}
			defer a.close()

			return a.runInteractive(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	root.PersistentFlags().StringVar(&configFlag, "config", "", "Path to the configuration YAML file")

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print every student and exit without saving",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd, configFlag)
			if err != nil {
				return err
			}
			defer a.close()

			response.Students(cmd.OutOrStdout(), a.store.All())
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Print mark statistics and exit without saving",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd, configFlag)
			if err != nil {
				return err
			}
			defer a.close()

			stats, err := a.store.Statistics()
			if errors.Is(err, records.ErrEmpty) {
				fmt.Fprintln(cmd.OutOrStdout(), response.MsgNoStudents)
				return nil
			}
			if err != nil {
				return err
			}
			response.Statistics(cmd.OutOrStdout(), stats)
			return nil
		},
	})

	return root
}

// app bundles everything a command needs once startup has finished.
type app struct {
	cfg     *config.Config
	log     *slog.Logger
	backend storage.Storage
	closeFn func() error
	store   *records.Store
}

// setup runs startup steps 1–4. Only configuration and backend errors are
// fatal; an unreadable roster is reported and replaced by an empty one.
func setup(cmd *cobra.Command, configFlag string) (*app, error) {
	// ── 1. Load Config ────────────────────────────────────────────────────
	cfg, err := config.Load(config.ResolvePath(configFlag))
	if err != nil {
		return nil, err
	}

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// Logs go to stderr so they never interleave with the menu on stdout.
	log := setupLogger(cfg.Env, cmd.ErrOrStderr())
	slog.SetDefault(log)

	log.Info("starting students",
		slog.String("env", cfg.Env),
		slog.String("version", version),
		slog.String("backend", cfg.StorageBackend),
	)

	// ── 3. Open Storage ───────────────────────────────────────────────────
	backend, closeFn, err := openBackend(cfg)
	if err != nil {
		log.Error("failed to initialise storage", slog.String("error", err.Error()))
		return nil, err
	}

	// ── 4. Load Roster ────────────────────────────────────────────────────
	store, err := records.Open(backend)
	if err != nil {
		log.Warn("could not load roster, starting empty",
			slog.String("path", cfg.StoragePath),
			slog.String("error", err.Error()))
		response.Warning(cmd.OutOrStdout(), fmt.Errorf("%w. Starting with empty database", err))
	} else {
		log.Info("roster loaded",
			slog.String("path", cfg.StoragePath),
			slog.Int("records", store.Len()))
	}

	return &app{
		cfg:     cfg,
		log:     log,
		backend: backend,
		closeFn: closeFn,
		store:   store,
	}, nil
}

// openBackend returns the configured storage.Storage and a function that
// releases it.
func openBackend(cfg *config.Config) (storage.Storage, func() error, error) {
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		db, err := sqlite.New(cfg)
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	default:
		return textfile.New(cfg.StoragePath), func() error { return nil }, nil
	}
}

// runInteractive runs steps 5 and 6. The menu runs in its own goroutine so
// that SIGINT/SIGTERM can end the session while it waits for input; the
// roster is saved either way.
//
// The menu writes through a gate. Once a signal arrives the gate is shut
// before saving, so a handler still running in the menu goroutine can no
// longer write to out while save does.
func (a *app) runInteractive(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	menuOut := &gateWriter{w: out}
	c := console.New("STUDENT MANAGEMENT SYSTEM", in, menuOut, a.log)
	student.Register(c, a.store)

	fmt.Fprintf(menuOut, "%d records loaded.\n", a.store.Len())

	done := make(chan error, 1)
	go func() {
		done <- c.Run(ctx)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		menuOut.shut()
		fmt.Fprintln(out)
		a.log.Info("shutdown signal received, saving roster...")
	}

	return a.save(out)
}

// gateWriter forwards writes to w until shut is called and silently drops
// them afterwards.
type gateWriter struct {
	mu     sync.Mutex
	w      io.Writer
	closed bool
}

func (g *gateWriter) Write(p []byte) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return len(p), nil
	}
	return g.w.Write(p)
}

// Unwrap exposes the underlying writer for terminal detection.
func (g *gateWriter) Unwrap() io.Writer { return g.w }

// shut waits for any in-flight Write to finish, then closes the gate.
func (g *gateWriter) shut() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
}

// save persists the store. A failure is logged and returned, never panics.
func (a *app) save(out io.Writer) error {
	if err := a.store.Persist(a.backend); err != nil {
		a.log.Error("failed to save roster",
			slog.String("path", a.cfg.StoragePath),
			slog.String("error", err.Error()))
		return err
	}

	a.log.Info("roster saved",
		slog.String("path", a.cfg.StoragePath),
		slog.Int("records", a.store.Len()))
	fmt.Fprintf(out, "Data saved successfully. %d records stored.\n", a.store.Len())
	return nil
}

func (a *app) close() {
	if err := a.closeFn(); err != nil {
		a.log.Error("failed to close storage", slog.String("error", err.Error()))
	}
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Staging (staging): JSON output at DEBUG level.
// Production (prod): JSON output at INFO level.
func setupLogger(env string, w io.Writer) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(w, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
