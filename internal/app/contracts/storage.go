package contracts

import "context"

type ReportArchive interface {
	StoreReport(ctx context.Context, assessmentID string, report []byte) error
}
