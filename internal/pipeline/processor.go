// Package pipeline runs one pass over the unprocessed request documents:
// download, OCR, field extraction, normalization and a single batch save.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/joseph-ayodele/request-ocr/constants"
	"github.com/joseph-ayodele/request-ocr/internal/blob"
	"github.com/joseph-ayodele/request-ocr/internal/common"
	"github.com/joseph-ayodele/request-ocr/internal/entity"
	"github.com/joseph-ayodele/request-ocr/internal/lock"
	"github.com/joseph-ayodele/request-ocr/internal/metrics"
	"github.com/joseph-ayodele/request-ocr/internal/pipeline/parsefields"
	"github.com/joseph-ayodele/request-ocr/internal/pipeline/textextract"
	"github.com/joseph-ayodele/request-ocr/internal/repository"
)

var tracer = otel.Tracer("github.com/joseph-ayodele/request-ocr/internal/pipeline")

// RunConfig is built fresh for every invocation.
type RunConfig struct {
	ConnectionString string
	Container        string
}

// RunConfigFrom takes the blob settings out of the application config.
func RunConfigFrom(c *common.Config) RunConfig {
	return RunConfig{ConnectionString: c.Storage.ConnectionString, Container: c.Storage.Container}
}

// DocumentError ties a failure to the document it aborted.
type DocumentError struct {
	Document string
	Err      error
}

func (e DocumentError) Error() string { return fmt.Sprintf("%s: %v", e.Document, e.Err) }

// Result summarizes one run.
type Result struct {
	RunID    string
	Outcome  constants.RunOutcome
	Pending  int
	Records  []entity.UsageRecord
	Marked   []string
	Missing  []string
	Failed   []DocumentError
	Duration time.Duration
}

// Inserted reports how many usage rows the run committed.
func (r Result) Inserted() int { return len(r.Records) }

// Processor coordinates text extraction then field parsing for every
// unprocessed document and saves the batch once.
type Processor struct {
	Store     repository.Store
	Lock      lock.RunLock
	OCR       *textextract.Pipeline
	Parse     *parsefields.Pipeline
	OpenBlobs func(ctx context.Context, connStr string) (blob.Store, error)
	Logger    *slog.Logger
}

func NewProcessor(store repository.Store, l lock.RunLock, ocr *textextract.Pipeline, parse *parsefields.Pipeline, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if l == nil {
		l = lock.NewMemoryLock()
	}
	return &Processor{Store: store, Lock: l, OCR: ocr, Parse: parse, OpenBlobs: blob.Open, Logger: logger}
}

// Run processes every unprocessed document once. A missing connection string
// is logged and yields an empty result. A run already holding the lock makes
// this one return common.ErrRunInProgress. Failures of single documents are
// collected in Result.Failed and leave those documents unprocessed.
func (p *Processor) Run(ctx context.Context, cfg RunConfig) (res Result, err error) {
	start := time.Now()
	res.RunID = uuid.NewString()
	ctx = common.WithRunID(ctx, res.RunID)
	log := common.LoggerFrom(ctx, p.Logger)

	ctx, span := tracer.Start(ctx, "pipeline.run")
	defer func() {
		res.Duration = time.Since(start)
		metrics.Runs.WithLabelValues(string(res.Outcome)).Inc()
		metrics.RunDuration.Observe(res.Duration.Seconds())
		span.SetAttributes(
			attribute.String("run.outcome", string(res.Outcome)),
			attribute.Int("run.inserted", res.Inserted()),
			attribute.Int("run.failed", len(res.Failed)),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if cfg.ConnectionString == "" {
		log.Warn("storage connection string not found, set STORAGE_CONNECTION_STRING")
		res.Outcome = constants.RunNoConfig
		return res, nil
	}

	release, ok, err := p.Lock.TryAcquire(ctx)
	if err != nil {
		log.Error("pipeline.lock.failed", "error", err)
		res.Outcome = constants.RunFailed
		return res, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		log.Info("pipeline.skipped", "reason", "run in progress")
		res.Outcome = constants.RunSkipped
		return res, common.ErrRunInProgress
	}
	defer func() {
		if rerr := release(context.WithoutCancel(ctx)); rerr != nil {
			log.Warn("pipeline.lock.release_failed", "error", rerr)
		}
	}()

	names, err := p.Store.ListUnprocessed(ctx)
	if err != nil {
		res.Outcome = constants.RunFailed
		return res, err
	}
	res.Pending = len(names)
	if len(names) == 0 {
		res.Outcome = constants.RunEmpty
		return res, nil
	}
	log.Info("pipeline.start", "pending", len(names), "container", cfg.Container)

	store, err := p.OpenBlobs(ctx, cfg.ConnectionString)
	if err != nil {
		log.Error("pipeline.blob.open_failed", "error", err)
		res.Outcome = constants.RunFailed
		return res, err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			log.Warn("pipeline.blob.close_failed", "error", cerr)
		}
	}()

	objects, err := store.List(ctx, cfg.Container)
	if err != nil {
		log.Error("pipeline.blob.list_failed", "container", cfg.Container, "error", err)
		res.Outcome = constants.RunFailed
		return res, err
	}

	var batch []entity.UsageRecord
	for _, name := range names {
		if ctx.Err() != nil {
			break
		}
		matches := blob.FindPDFs(objects, name)
		if len(matches) == 0 {
			log.Warn("pipeline.document.missing", "document", name)
			metrics.Documents.WithLabelValues(string(constants.OutcomeMissing)).Inc()
			res.Missing = append(res.Missing, name)
			continue
		}
		recs, derr := p.processDocument(common.WithDocument(ctx, name), store, cfg.Container, name, matches)
		if derr != nil {
			common.LoggerFrom(common.WithDocument(ctx, name), p.Logger).Error("pipeline.document.failed", "error", derr)
			metrics.Documents.WithLabelValues(string(constants.OutcomeFailed)).Inc()
			res.Failed = append(res.Failed, DocumentError{Document: name, Err: derr})
			continue
		}
		batch = append(batch, recs...)
	}

	saved, err := p.Store.SaveBatch(ctx, batch)
	if saved.Inserted > 0 {
		res.Records = batch
		metrics.RecordsInserted.Add(float64(saved.Inserted))
	}
	res.Marked = saved.Marked
	if err != nil {
		res.Outcome = constants.RunFailed
		return res, err
	}
	metrics.Documents.WithLabelValues(string(constants.OutcomeSaved)).Add(float64(len(saved.Marked)))

	res.Outcome = constants.RunOK
	if len(batch) == 0 {
		res.Outcome = constants.RunEmpty
	}
	if ctx.Err() != nil {
		res.Outcome = constants.RunFailed
		err = ctx.Err()
	}
	log.Info("pipeline.done",
		"inserted", saved.Inserted,
		"marked", len(saved.Marked),
		"missing", len(res.Missing),
		"failed", len(res.Failed),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, err
}

// processDocument builds one record per matching PDF. Any failure, a panic in
// a stage included, drops the whole document so it is retried on the next run.
func (p *Processor) processDocument(ctx context.Context, store blob.Store, container, name string, matches []blob.ObjectInfo) (recs []entity.UsageRecord, err error) {
	ctx, span := tracer.Start(ctx, "pipeline.document")
	defer span.End()
	span.SetAttributes(attribute.String("document.name", name), attribute.Int("document.blobs", len(matches)))

	defer func() {
		if r := recover(); r != nil {
			recs, err = nil, fmt.Errorf("panic: %v", r)
			span.RecordError(err)
		}
	}()

	recs = make([]entity.UsageRecord, 0, len(matches))
	for _, obj := range matches {
		text, err := p.OCR.Run(ctx, store, container, obj.Name)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		input := text.Raw
		if input == "" {
			input = text.Text
		}
		rec, err := p.Parse.Run(name, obj.Name, input)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// IsSkipped reports whether err means another run was already in progress.
func IsSkipped(err error) bool { return errors.Is(err, common.ErrRunInProgress) }
