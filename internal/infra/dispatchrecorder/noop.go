package dispatchrecorder

import (
	"context"

	"github.com/JulianRR24/planningweb-push-scheduler/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.DispatchRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordCycle(_ context.Context, _ []domain.DispatchRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
