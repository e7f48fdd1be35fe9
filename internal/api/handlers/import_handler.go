package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shahhub/resumehub/internal/access"
	"github.com/shahhub/resumehub/internal/extract"
	"github.com/shahhub/resumehub/internal/repositories/postgres"
	"github.com/shahhub/resumehub/internal/services"
	"github.com/shahhub/resumehub/internal/utils"
	"github.com/shahhub/resumehub/internal/workers"
)

const (
	maxUploadBytes = 10 << 20 // 10 MiB

	// guests get a single trial import before the sign-in wall
	guestUploadLimit = 1
)

type ImportHandler struct {
	editor   services.EditorService
	queue    *workers.ImportQueue
	accounts postgres.AccountRepository
	log      *logrus.Logger
}

func NewImportHandler(editor services.EditorService, queue *workers.ImportQueue, accounts postgres.AccountRepository, log *logrus.Logger) *ImportHandler {
	return &ImportHandler{editor: editor, queue: queue, accounts: accounts, log: log}
}

// Upload accepts a resume file, extracts its text synchronously and queues
// the structuring job. Progress lands on the document's event channel; the
// document stays untouched until the worker applies a successful result.
func (h *ImportHandler) Upload(c *gin.Context) {
	const op = "ImportHandler.Upload"

	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	tier := callerTier(c)
	docID := c.Param("doc_id")

	// the document must exist and belong to the caller before any work
	if _, err := h.editor.Get(accountID, docID); err != nil {
		writeError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "missing file field", err))
		return
	}
	if fileHeader.Size > maxUploadBytes {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "file too large", nil))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "could not open upload", err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "could not read upload", err))
		return
	}

	text, err := extract.Text(fileHeader.Filename, data)
	if err != nil {
		writeError(c, err)
		return
	}

	ctx := c.Request.Context()
	uploads, err := h.accounts.IncrementUploads(ctx, accountID)
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "could not record upload", err))
		return
	}
	if tier == access.TierGuest && uploads > guestUploadLimit {
		writeError(c, utils.E(utils.CodeUnauthorized, op, "guest trial upload limit reached, sign in to continue", nil))
		return
	}

	job := workers.ImportJob{
		DocID:     docID,
		AccountID: accountID,
		Tier:      tier,
		RawText:   text,
	}
	if err := h.queue.Enqueue(ctx, job); err != nil {
		writeError(c, utils.E(utils.CodeUnavailable, op, "import queue unavailable", err))
		return
	}

	h.log.WithFields(logrus.Fields{
		"doc_id":     docID,
		"account_id": accountID,
		"filename":   fileHeader.Filename,
	}).Info("import queued")

	c.JSON(http.StatusAccepted, gin.H{
		"doc_id": docID,
		"status": "queued",
		"events": workers.EventChannel(docID),
	})
}
