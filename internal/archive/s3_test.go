package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockS3 struct {
	inputs []*s3.PutObjectInput
	err    error
}

func (m *mockS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.inputs = append(m.inputs, params)
	return &s3.PutObjectOutput{}, nil
}

func TestArchiverStore(t *testing.T) {
	client := &mockS3{}
	a := NewArchiver(client, "call-archive")

	err := a.Store(context.Background(), "call-123", []byte(`{"message":{}}`))
	require.NoError(t, err)

	require.Len(t, client.inputs, 1)
	in := client.inputs[0]
	assert.Equal(t, "call-archive", *in.Bucket)

	now := time.Now().UTC()
	wantKey := fmt.Sprintf("calls/%04d/%02d/call-123.json", now.Year(), now.Month())
	assert.Equal(t, wantKey, *in.Key)
	assert.Equal(t, "application/json", *in.ContentType)

	body, err := io.ReadAll(in.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":{}}`, string(body))
}

func TestArchiverStore_PutFails(t *testing.T) {
	a := NewArchiver(&mockS3{err: errors.New("denied")}, "call-archive")

	err := a.Store(context.Background(), "call-123", nil)
	assert.Error(t, err)
}

func TestNewArchiver_RequiresClientAndBucket(t *testing.T) {
	assert.Nil(t, NewArchiver(nil, "bucket"))
	assert.Nil(t, NewArchiver(&mockS3{}, ""))
}
