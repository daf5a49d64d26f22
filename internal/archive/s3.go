// Package archive stores raw webhook payloads in S3 so extraction heuristics
// can be retuned later against real calls.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Client is the slice of the S3 API the archiver needs; tests substitute
// their own.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Archiver struct {
	s3     S3Client
	bucket string
}

func NewArchiver(client S3Client, bucket string) *Archiver {
	if client == nil || bucket == "" {
		return nil
	}
	return &Archiver{s3: client, bucket: bucket}
}

// Store writes one payload under calls/YYYY/MM/<call-id>.json.
func (a *Archiver) Store(ctx context.Context, callID string, payload []byte) error {
	if a == nil {
		return nil
	}

	now := time.Now().UTC()
	key := fmt.Sprintf("calls/%04d/%02d/%s.json", now.Year(), now.Month(), callID)

	_, err := a.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("archive: put %s: %w", key, err)
	}
	return nil
}
