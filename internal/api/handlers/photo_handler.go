package handlers

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shahhub/resumehub/internal/services"
	"github.com/shahhub/resumehub/internal/storage"
	"github.com/shahhub/resumehub/internal/utils"
)

const maxPhotoBytes = 5 << 20 // 5 MiB

var photoContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

type PhotoHandler struct {
	editor services.EditorService
	store  storage.Uploader
	signer storage.Signer
}

func NewPhotoHandler(editor services.EditorService, store storage.Uploader, signer storage.Signer) *PhotoHandler {
	return &PhotoHandler{editor: editor, store: store, signer: signer}
}

// Upload stores a portrait photo and writes its URL into the document's
// personal info. Whether the photo renders depends on the selected region.
func (h *PhotoHandler) Upload(c *gin.Context) {
	const op = "PhotoHandler.Upload"

	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	docID := c.Param("doc_id")

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "missing photo field", err))
		return
	}
	if fileHeader.Size > maxPhotoBytes {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "photo too large", nil))
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType, ok := photoContentTypes[ext]
	if !ok {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "unsupported image type", nil))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "could not open upload", err))
		return
	}
	defer f.Close()

	objectName := "photos/" + accountID + "/" + uuid.NewString() + ext
	url, err := h.store.Upload(c.Request.Context(), objectName, contentType, f)
	if err != nil {
		writeError(c, utils.E(utils.CodeUnavailable, op, "photo storage unavailable", err))
		return
	}

	if err := h.editor.UpdatePersonalField(accountID, callerTier(c), docID, "photo_url", url); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"photo_url": url})
}

// List returns the account's previously uploaded photos.
func (h *PhotoHandler) List(c *gin.Context) {
	const op = "PhotoHandler.List"

	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	names, err := h.store.List(c.Request.Context(), "photos/"+accountID+"/")
	if err != nil {
		writeError(c, utils.E(utils.CodeUnavailable, op, "photo storage unavailable", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"photos": names})
}

// SignedURL issues a time-limited download URL for one of the caller's
// photos, for clients that cannot use the public object URL.
func (h *PhotoHandler) SignedURL(c *gin.Context) {
	const op = "PhotoHandler.SignedURL"

	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	object := c.Query("object")
	if !strings.HasPrefix(object, "photos/"+accountID+"/") {
		writeError(c, utils.E(utils.CodeForbidden, op, "object belongs to another account", nil))
		return
	}

	url, err := h.signer.SignedGetURL(c.Request.Context(), object, 15*time.Minute)
	if err != nil {
		writeError(c, utils.E(utils.CodeUnavailable, op, "could not sign url", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
