package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"p2mark/internal/config"
	"p2mark/internal/failure"
	"p2mark/internal/journal"
	"p2mark/internal/logging"
	"p2mark/internal/p2clip"
	"p2mark/internal/p2tree"
)

// ErrBusy is returned when another process holds the lock for a CLIP directory.
var ErrBusy = errors.New("another p2mark run is writing to this card")

// Runner executes batch runs.
type Runner struct {
	cfg     *config.Config
	read    MarkerReader
	writer  SidecarWriter
	journal Recorder
	logger  *slog.Logger
}

// Option customizes a Runner.
type Option func(*Runner)

// WithReader replaces the clip reader.
func WithReader(read MarkerReader) Option {
	return func(r *Runner) {
		if read != nil {
			r.read = read
		}
	}
}

// WithJournal records every processed clip in rec.
func WithJournal(rec Recorder) Option {
	return func(r *Runner) {
		r.journal = rec
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner returns a Runner that writes sidecars with writer.
func NewRunner(cfg *config.Config, writer SidecarWriter, opts ...Option) (*Runner, error) {
	if cfg == nil || writer == nil {
		return nil, errors.New("batch runner requires config and sidecar writer")
	}
	r := &Runner{cfg: cfg, read: p2clip.ReadMarkers, writer: writer}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = logging.NewComponentLogger(r.logger, "batch")
	return r, nil
}

// Run processes the CONTENTS directory at contentsPath. The returned error is
// set only when the run could not start or was aborted; per-clip failures are
// in the report. obs may be nil.
func (r *Runner) Run(ctx context.Context, contentsPath string, mode Mode, obs Observer) (Report, error) {
	report := Report{RunID: uuid.NewString(), Mode: mode}
	logger := r.logger.With(
		logging.String(logging.FieldRunID, report.RunID),
		logging.String(logging.FieldMode, string(mode)),
	)

	clipDir, err := p2tree.Validate(contentsPath)
	if err != nil {
		return report, err
	}
	report.ClipDir = clipDir

	if mode == ModeWrite {
		if err := p2tree.CheckWritable(clipDir); err != nil {
			return report, fmt.Errorf("cannot write sidecars: %w", err)
		}
		unlock, err := r.lock(clipDir)
		if err != nil {
			return report, err
		}
		defer unlock()
	}

	scan, err := p2tree.Discover(clipDir, p2tree.Options{
		SourceExt: r.cfg.Scan.SourceExt,
		SizeLimit: r.cfg.ClipSizeLimit(),
	})
	if err != nil {
		return report, err
	}
	report.Stats.ClipsFound = len(scan.Clips)

	for _, clip := range scan.Skipped {
		if clip.Class != p2tree.TooLarge {
			logger.Debug("ignoring clip directory entry",
				logging.String(logging.FieldClip, clip.Name),
				logging.String("reason", clip.Class.String()))
			continue
		}
		report.Stats.SkippedLarge++
		report.Skipped = append(report.Skipped, clip)
		logger.Info("clip file skipped",
			logging.String(logging.FieldEventType, "clip_too_large"),
			logging.String(logging.FieldClip, clip.Name),
			logging.Int64("size_bytes", clip.Size))
		r.record(ctx, logger, report, clip.Name, "", 0, journal.OutcomeSkipped, nil)
		if obs != nil {
			obs.ClipSkipped(clip)
		}
	}

	logger.Info("batch started",
		logging.String("clip_dir", clipDir),
		logging.Int("clips", len(scan.Clips)))

	for _, clip := range scan.Clips {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("run interrupted: %w", err)
		}
		result := r.processClip(ctx, mode, clip, &report.Stats)
		report.Results = append(report.Results, result)
		r.record(ctx, logger, report, clip.Name, result.SidecarName, len(result.Markers), result.Outcome, result.Err)
		if result.Err != nil {
			logger.Info("clip failed",
				logging.String(logging.FieldClip, clip.Name),
				logging.String(logging.FieldErrorKind, string(failure.KindOf(result.Err))),
				logging.Error(result.Err))
		}
		if obs != nil {
			obs.ClipProcessed(result)
		}
		if failure.IsFatal(result.Err) {
			return report, fmt.Errorf("%s: %w", clip.Name, result.Err)
		}
	}

	logger.Info("batch finished",
		logging.Int("clips_with_markers", report.Stats.ClipsWithMarkers),
		logging.Int(logging.FieldMarkerCount, report.Stats.TotalMarkers),
		logging.Int("source_read_errors", report.Stats.SourceReadErrors),
		logging.Int("sidecar_write_errors", report.Stats.SidecarWriteErrors))
	return report, nil
}

func (r *Runner) processClip(ctx context.Context, mode Mode, clip p2tree.Clip, stats *Stats) ClipResult {
	sidecarPath := p2tree.SidecarPath(clip.Path, r.cfg.Scan.SidecarExt)
	result := ClipResult{
		Clip:        clip,
		SidecarName: filepath.Base(sidecarPath),
	}

	markers, err := r.read(clip.Path)
	if err != nil {
		result.Outcome = journal.OutcomeFailed
		result.Err = err
		if !failure.IsFatal(err) {
			stats.SourceReadErrors++
		}
		return result
	}
	if len(markers) == 0 {
		result.Outcome = journal.OutcomeNoMarkers
		return result
	}

	result.Markers = markers
	stats.ClipsWithMarkers++
	stats.TotalMarkers += len(markers)

	if mode != ModeWrite {
		result.Outcome = journal.OutcomeListed
		return result
	}

	if _, err := r.writer.Write(ctx, sidecarPath, markers); err != nil {
		result.Outcome = journal.OutcomeFailed
		result.Err = err
		if !failure.IsFatal(err) {
			stats.SidecarWriteErrors++
		}
		return result
	}
	result.SidecarPath = sidecarPath
	result.Outcome = journal.OutcomeWritten
	return result
}

func (r *Runner) record(ctx context.Context, logger *slog.Logger, report Report, clip, sidecar string, markers int, outcome journal.Outcome, clipErr error) {
	if r.journal == nil {
		return
	}
	entry := journal.Entry{
		RunID:       report.RunID,
		Mode:        string(report.Mode),
		ContentsDir: filepath.Dir(report.ClipDir),
		Clip:        clip,
		Sidecar:     sidecar,
		Markers:     markers,
		Outcome:     outcome,
	}
	if outcome != journal.OutcomeWritten {
		entry.Sidecar = ""
	}
	if clipErr != nil {
		entry.ErrorKind = string(failure.KindOf(clipErr))
		entry.Error = failure.Reason(clipErr)
	}
	// A cancelled run still records the clip that observed the cancellation.
	if _, err := r.journal.Record(context.WithoutCancel(ctx), entry); err != nil {
		logging.WarnWithContext(logger, "journal entry not recorded", "journal_write_failed",
			logging.String(logging.FieldClip, clip),
			logging.Error(err),
			logging.String(logging.FieldImpact, "run history is incomplete"),
			logging.String(logging.FieldErrorHint, "check free space and permissions of the state directory"))
	}
}

// lock takes the per-CLIP-directory run lock and returns its release func.
func (r *Runner) lock(clipDir string) (func(), error) {
	lockDir := r.cfg.LockDir()
	if err := os.MkdirAll(lockDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure lock directory: %w", err)
	}
	abs, err := filepath.Abs(clipDir)
	if err != nil {
		abs = clipDir
	}
	name := uuid.NewSHA1(uuid.NameSpaceURL, []byte("file://"+abs)).String() + ".lock"
	lock := flock.New(filepath.Join(lockDir, name))

	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBusy, clipDir)
	}
	return func() {
		if err := lock.Unlock(); err != nil {
			r.logger.Warn("failed to release run lock", logging.Error(err))
		}
	}, nil
}
