package storage

import (
	"bytes"
	"context"
	"errors"
	"path"
	"strconv"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/oksasatya/edupath/pkg/helpers"
)

var errNotConfigured = errors.New("gcs archive not configured")

// GCSArchive stores uploaded résumé PDFs under resumes/<user>/<uuid>.pdf.
type GCSArchive struct {
	client *storage.Client
	bucket string
}

func NewGCSArchive(client *storage.Client, bucket string) *GCSArchive {
	return &GCSArchive{client: client, bucket: bucket}
}

// Archive uploads data and returns its public URL.
func (a *GCSArchive) Archive(ctx context.Context, userID int64, _ string, data []byte) (string, error) {
	if a == nil || a.client == nil || a.bucket == "" {
		return "", errNotConfigured
	}
	c, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return helpers.UploadObject(c, a.client, a.bucket, objectPath(userID, uuid.NewString()), "application/pdf", bytes.NewReader(data))
}

func objectPath(userID int64, id string) string {
	return path.Join("resumes", strconv.FormatInt(userID, 10), id+".pdf")
}
