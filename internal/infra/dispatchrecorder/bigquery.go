//go:build gcloud

package dispatchrecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/JulianRR24/planningweb-push-scheduler/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt     time.Time `bigquery:"recorded_at"`
	CycleTime      time.Time `bigquery:"cycle_time"`
	RunID          string    `bigquery:"run_id"`
	EntryID        string    `bigquery:"entry_id"`
	RecipientCount int64     `bigquery:"recipient_count"`
	Success        bool      `bigquery:"success"`
	Error          string    `bigquery:"error"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
	dataset  string
	table    string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.DispatchRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "dispatch result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, dispatch result recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, dispatch result recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	table := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable)
	inserter := table.Inserter()

	slog.InfoContext(ctx, "dispatch result recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: inserter,
		dataset:  cfg.BigQueryDataset,
		table:    cfg.BigQueryTable,
	}, nil
}

func (r *bigQueryRecorder) RecordCycle(ctx context.Context, records []domain.DispatchRecord) error {
	if len(records) == 0 {
		return nil
	}

	now := time.Now()
	bqRecords := make([]*bigQueryRecord, 0, len(records))
	for _, record := range records {
		bqRecords = append(bqRecords, &bigQueryRecord{
			RecordedAt:     now,
			CycleTime:      record.CycleTime,
			RunID:          record.RunID,
			EntryID:        record.EntryID,
			RecipientCount: int64(record.RecipientCount),
			Success:        record.Success,
			Error:          record.Error,
		})
	}

	if err := r.inserter.Put(ctx, bqRecords); err != nil {
		slog.WarnContext(ctx, "failed to insert dispatch results to BigQuery",
			slog.String("error", err.Error()),
			slog.Int("record_count", len(records)),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Flush(ctx context.Context) error {
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
