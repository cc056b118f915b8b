package report

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sanjab/internal/models"
	"sanjab/internal/repositories"
)

type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) SaveTransaction(ctx context.Context, tx *models.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepo) GetByReference(ctx context.Context, reference string) (*models.Transaction, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepo) GetMerchantTransactions(ctx context.Context, merchantID uint, filter repositories.ReportFilter) ([]models.Transaction, int64, error) {
	args := m.Called(ctx, merchantID, filter)
	return args.Get(0).([]models.Transaction), args.Get(1).(int64), args.Error(2)
}

func TestMerchantReport_SumsCompletedOnly(t *testing.T) {
	repo := new(MockTransactionRepo)
	svc := NewService(repo)

	transactions := []models.Transaction{
		{
			Status:      models.TransactionStatusCompleted,
			TotalAmount: decimal.NewFromInt(150000),
			CreditUsed:  decimal.NewFromInt(120000),
		},
		{
			Status:      models.TransactionStatusDeclined,
			TotalAmount: decimal.NewFromInt(99000),
			CreditUsed:  decimal.NewFromInt(10000),
		},
		{
			Status:      models.TransactionStatusCompleted,
			TotalAmount: decimal.NewFromInt(50000),
			CreditUsed:  decimal.Zero,
		},
	}
	repo.On("GetMerchantTransactions", mock.Anything, uint(7), mock.Anything).
		Return(transactions, int64(3), nil)

	summary, err := svc.MerchantReport(context.Background(), 7, repositories.ReportFilter{})
	require.NoError(t, err)

	assert.Equal(t, int64(3), summary.Total)
	assert.Equal(t, "200000", summary.TotalAmount.String())
	assert.Equal(t, "120000", summary.TotalCredit.String())
	repo.AssertExpectations(t)
}
