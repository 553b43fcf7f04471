package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

const (
	reportPrefix = "reports"
	pdfType      = "application/pdf"
	urlExpiry    = time.Hour
)

// ReportArchive keeps a copy of every exported report in a MinIO bucket.
type ReportArchive struct {
	client     *minio.Client
	bucketName string
	now        func() time.Time
}

// NewReportArchive connects to MinIO and creates the bucket if it does not exist.
func NewReportArchive(ctx context.Context, endpoint, accessKey, secretKey, bucketName string, useSSL bool) (*ReportArchive, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		if err := client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logrus.Infof("Bucket %s created successfully", bucketName)
	}

	return &ReportArchive{
		client:     client,
		bucketName: bucketName,
		now:        time.Now,
	}, nil
}

// ObjectName builds the key of a report archived at t.
func ObjectName(t time.Time, id uuid.UUID) string {
	return path.Join(reportPrefix, fmt.Sprintf("%s_%s.pdf", t.Format("2006-01-02"), id.String()))
}

// Store uploads a rendered report and returns its object name.
func (a *ReportArchive) Store(ctx context.Context, report []byte) (string, error) {
	name := ObjectName(a.now(), uuid.New())

	_, err := a.client.PutObject(ctx, a.bucketName, name, bytes.NewReader(report), int64(len(report)), minio.PutObjectOptions{
		ContentType: pdfType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload report: %w", err)
	}

	logrus.WithFields(logrus.Fields{"object": name, "size": len(report)}).Info("report archived")
	return name, nil
}

// URL returns a presigned download link valid for one hour.
func (a *ReportArchive) URL(ctx context.Context, name string) (string, error) {
	params := url.Values{}
	params.Set("response-content-disposition", `attachment; filename="`+path.Base(name)+`"`)

	u, err := a.client.PresignedGetObject(ctx, a.bucketName, name, urlExpiry, params)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return u.String(), nil
}
