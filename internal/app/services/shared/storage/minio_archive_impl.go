package storage

import (
	"bytes"
	"context"
	"fmt"

	"tmdscreen-service/internal/app/contracts"
	"tmdscreen-service/internal/pkg/constvars"
	"tmdscreen-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioReportArchive struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioReportArchive(minioClient *minio.Client, bucketName string) contracts.ReportArchive {
	return &minioReportArchive{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioReportArchive) StoreReport(ctx context.Context, assessmentID string, report []byte) error {
	objectName := fmt.Sprintf("assessments/%s.json", assessmentID)
	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(report),
		int64(len(report)),
		minio.PutObjectOptions{
			ContentType: constvars.MIMEApplicationJSON,
		},
	)
	if err != nil {
		return exceptions.ErrArchiveReport(err)
	}
	return nil
}
