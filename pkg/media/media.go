package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/mongo/gridfs"

	"yatube/pkg/common"
)

// UploadDir is where post images live inside the media namespace.
const UploadDir = "posts"

var (
	ErrNotFound = errors.New("media: file not found")

	unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)
)

type Storage struct {
	bucket IBucket
}

func NewStorage(b IBucket) *Storage {
	return &Storage{bucket: b}
}

func (s *Storage) Exists(ctx context.Context, name string) (bool, error) {
	n, err := s.bucket.CountByName(ctx, name)
	if err != nil {
		return false, fmt.Errorf("media: count failed for %s: %w", name, err)
	}
	return n > 0, nil
}

// Save stores data under posts/<filename> and returns the name it got.
// A taken name gets a random suffix before the extension.
func (s *Storage) Save(ctx context.Context, filename string, data []byte) (string, error) {
	base := path.Join(UploadDir, cleanName(filename))
	ext := path.Ext(base)
	name := base

	taken, err := s.Exists(ctx, name)
	if err != nil {
		return "", err
	}
	for taken {
		name = strings.TrimSuffix(base, ext) + "_" + common.RandStringRunes(7) + ext
		if taken, err = s.Exists(ctx, name); err != nil {
			return "", err
		}
	}

	if err := s.bucket.UploadFromStream(name, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("media: upload of %s failed: %w", name, err)
	}
	return name, nil
}

func (s *Storage) Open(name string) (io.ReadCloser, error) {
	rc, err := s.bucket.OpenDownloadStreamByName(name)
	if errors.Is(err, gridfs.ErrFileNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("media: open %s failed: %w", name, err)
	}
	return rc, nil
}

func cleanName(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	name = strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	name = unsafeChars.ReplaceAllString(name, "")
	if name == "." || name == ".." {
		name = ""
	}
	if name == "" || strings.HasPrefix(name, ".") {
		name = "image" + name
	}
	return name
}
