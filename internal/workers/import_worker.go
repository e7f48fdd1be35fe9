package workers

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shahhub/resumehub/internal/access"
	"github.com/shahhub/resumehub/internal/identgen"
	"github.com/shahhub/resumehub/internal/importer"
	"github.com/shahhub/resumehub/internal/providers/llm"
	"github.com/shahhub/resumehub/internal/services"
)

const (
	ImportStream = "import:stream"
	importGroup  = "import-workers"

	readBlock  = 5 * time.Second
	jobTimeout = 2 * time.Minute
)

// EventChannel is the per-document pub/sub channel carrying import progress.
func EventChannel(docID string) string {
	return "resume:" + docID + ":events"
}

// ImportJob is one queued structuring request. The upload was already
// text-extracted at enqueue time; the worker only talks to the model.
type ImportJob struct {
	DocID     string
	AccountID string
	Tier      access.Tier
	RawText   string
}

// ImportEvent is published on the document's event channel.
type ImportEvent struct {
	DocID  string `json:"doc_id"`
	Status string `json:"status"` // processing | done | failed
	Error  string `json:"error,omitempty"`
}

// ImportQueue enqueues structuring jobs onto the redis stream.
type ImportQueue struct {
	rdb *redis.Client
}

func NewImportQueue(rdb *redis.Client) *ImportQueue {
	return &ImportQueue{rdb: rdb}
}

func (q *ImportQueue) Enqueue(ctx context.Context, job ImportJob) error {
	return q.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: ImportStream,
		Values: map[string]any{
			"doc_id":     job.DocID,
			"account_id": job.AccountID,
			"tier":       int(job.Tier),
			"raw_text":   job.RawText,
		},
	}).Err()
}

// ImportWorker consumes structuring jobs: model call, normalization, then a
// wholesale apply into the live document. A failed job leaves the document
// untouched and reports the failure on the event channel.
type ImportWorker struct {
	rdb      *redis.Client
	provider llm.Provider
	editor   services.EditorService
	alloc    identgen.Allocator
	log      *logrus.Logger
	consumer string
}

func NewImportWorker(rdb *redis.Client, provider llm.Provider, editor services.EditorService, alloc identgen.Allocator, log *logrus.Logger, consumer string) *ImportWorker {
	return &ImportWorker{
		rdb:      rdb,
		provider: provider,
		editor:   editor,
		alloc:    alloc,
		log:      log,
		consumer: consumer,
	}
}

// Run blocks until ctx is cancelled.
func (w *ImportWorker) Run(ctx context.Context) error {
	err := w.rdb.XGroupCreateMkStream(ctx, ImportStream, importGroup, "$").Err()
	if err != nil && !isBusyGroup(err) {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		streams, err := w.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    importGroup,
			Consumer: w.consumer,
			Streams:  []string{ImportStream, ">"},
			Count:    1,
			Block:    readBlock,
		}).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			w.log.WithError(err).Error("import stream read failed")
			time.Sleep(time.Second)
			continue
		}

		for _, stream := range streams {
			for _, msg := range stream.Messages {
				w.handle(ctx, msg)
				if err := w.rdb.XAck(ctx, ImportStream, importGroup, msg.ID).Err(); err != nil {
					w.log.WithError(err).WithField("msg_id", msg.ID).Error("import job ack failed")
				}
			}
		}
	}
}

func isBusyGroup(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "BUSYGROUP")
}

func (w *ImportWorker) handle(ctx context.Context, msg redis.XMessage) {
	job, ok := decodeJob(msg)
	if !ok {
		w.log.WithField("msg_id", msg.ID).Error("malformed import job dropped")
		return
	}

	log := w.log.WithFields(logrus.Fields{
		"doc_id":     job.DocID,
		"account_id": job.AccountID,
	})

	jctx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()

	w.publish(jctx, ImportEvent{DocID: job.DocID, Status: "processing"})

	structured, err := w.provider.StructureResume(jctx, job.RawText)
	if err != nil {
		log.WithError(err).Error("resume structuring failed")
		w.publish(jctx, ImportEvent{DocID: job.DocID, Status: "failed", Error: "could not structure resume"})
		return
	}

	doc, err := importer.Normalize(structured, w.alloc)
	if err != nil {
		log.WithError(err).Error("import normalization failed")
		w.publish(jctx, ImportEvent{DocID: job.DocID, Status: "failed", Error: "unusable import payload"})
		return
	}

	if err := w.editor.ApplyImport(job.AccountID, job.Tier, job.DocID, doc); err != nil {
		log.WithError(err).Error("import apply failed")
		w.publish(jctx, ImportEvent{DocID: job.DocID, Status: "failed", Error: "could not apply import"})
		return
	}

	log.Info("import applied")
	w.publish(jctx, ImportEvent{DocID: job.DocID, Status: "done"})
}

func decodeJob(msg redis.XMessage) (ImportJob, bool) {
	job := ImportJob{}
	var ok bool

	if job.DocID, ok = stringField(msg, "doc_id"); !ok {
		return job, false
	}
	if job.AccountID, ok = stringField(msg, "account_id"); !ok {
		return job, false
	}
	if job.RawText, ok = stringField(msg, "raw_text"); !ok {
		return job, false
	}
	if raw, found := stringField(msg, "tier"); found {
		if n, err := strconv.Atoi(raw); err == nil {
			job.Tier = access.Tier(n)
		}
	}
	return job, true
}

func stringField(msg redis.XMessage, key string) (string, bool) {
	v, ok := msg.Values[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (w *ImportWorker) publish(ctx context.Context, ev ImportEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}
	if err := w.rdb.Publish(ctx, EventChannel(ev.DocID), payload).Err(); err != nil {
		w.log.WithError(err).WithField("doc_id", ev.DocID).Warn("import event publish failed")
	}
}
