package media

import (
	"context"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const bucketName = "media"

type ( // Interfaces
	IBucket interface {
		UploadFromStream(filename string, source io.Reader) error
		OpenDownloadStreamByName(filename string) (io.ReadCloser, error)
		CountByName(ctx context.Context, filename string) (int64, error)
	}
)

type ( // Structs
	GridFSBucket struct {
		bucket *gridfs.Bucket
		files  *mongo.Collection
	}
)

func NewGridFSBucket(db *mongo.Database) (*GridFSBucket, error) {
	b, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(bucketName))
	if err != nil {
		return nil, err
	}
	return &GridFSBucket{
		bucket: b,
		files:  db.Collection(bucketName + ".files"),
	}, nil
}

func (b *GridFSBucket) UploadFromStream(filename string, source io.Reader) error {
	_, err := b.bucket.UploadFromStream(filename, source)
	return err
}

// OpenDownloadStreamByName returns the newest revision of the file.
func (b *GridFSBucket) OpenDownloadStreamByName(filename string) (io.ReadCloser, error) {
	stream, err := b.bucket.OpenDownloadStreamByName(filename)
	if err != nil {
		return nil, err
	}
	return stream, nil
}

func (b *GridFSBucket) CountByName(ctx context.Context, filename string) (int64, error) {
	return b.files.CountDocuments(ctx, bson.M{"filename": filename})
}
