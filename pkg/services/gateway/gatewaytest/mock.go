// Package gatewaytest provides a testify mock of gateway.Gateway.
package gatewaytest

import (
	"context"

	"github.com/de-tools/wafr-cli/pkg/models/domain"
	"github.com/stretchr/testify/mock"
)

type MockGateway struct{ mock.Mock }

func (m *MockGateway) ListWorkloads(ctx context.Context, maxResults int32) ([]domain.WorkloadSummary, error) {
	args := m.Called(ctx, maxResults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkloadSummary), args.Error(1)
}

func (m *MockGateway) GetWorkload(ctx context.Context, workloadID string) (*domain.Workload, error) {
	args := m.Called(ctx, workloadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workload), args.Error(1)
}

func (m *MockGateway) CreateWorkload(ctx context.Context, req domain.NewWorkload) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) AssociateLenses(ctx context.Context, workloadID string, lensAliases []string) error {
	args := m.Called(ctx, workloadID, lensAliases)
	return args.Error(0)
}

func (m *MockGateway) ListAnswers(
	ctx context.Context,
	workloadID, lensAlias, pillarID string,
	maxResults int32,
) ([]domain.AnswerSummary, error) {
	args := m.Called(ctx, workloadID, lensAlias, pillarID, maxResults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnswerSummary), args.Error(1)
}

func (m *MockGateway) GetAnswer(ctx context.Context, workloadID, lensAlias, questionID string) (*domain.Answer, error) {
	args := m.Called(ctx, workloadID, lensAlias, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Answer), args.Error(1)
}

func (m *MockGateway) UpdateAnswer(ctx context.Context, update domain.AnswerUpdate) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}

func (m *MockGateway) ListLenses(ctx context.Context) ([]domain.LensSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LensSummary), args.Error(1)
}

func (m *MockGateway) ImportLens(ctx context.Context, req domain.LensImport) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) CreateLensVersion(ctx context.Context, lensAlias, version string) error {
	args := m.Called(ctx, lensAlias, version)
	return args.Error(0)
}

// UpdateCalls returns the AnswerUpdate payloads recorded so far, in call order.
func (m *MockGateway) UpdateCalls() []domain.AnswerUpdate {
	var updates []domain.AnswerUpdate
	for _, call := range m.Calls {
		if call.Method == "UpdateAnswer" {
			updates = append(updates, call.Arguments.Get(1).(domain.AnswerUpdate))
		}
	}
	return updates
}
