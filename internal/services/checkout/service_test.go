package checkout

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sanjab/internal/models"
	"sanjab/internal/services/allocation"
	"sanjab/internal/services/split"
	"sanjab/internal/services/terminal"
)

const merchantSheba = "IR430600500901007959216001"

type MockStore struct {
	mock.Mock
}

func (m *MockStore) SaveTransaction(ctx context.Context, tx *models.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

type MockDriver struct {
	mock.Mock
}

func (m *MockDriver) Purchase(ctx context.Context, req terminal.PurchaseRequest) (*terminal.Result, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*terminal.Result), args.Error(1)
}

func (m *MockDriver) PurchaseSplit(ctx context.Context, req terminal.SplitPurchaseRequest) (*terminal.Result, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*terminal.Result), args.Error(1)
}

func newService(store *MockStore, driver *MockDriver) *Service {
	return NewService(store, driver, Config{Split: split.DefaultConfig()})
}

func baseRequest() Request {
	return Request{
		MerchantID: 7,
		BranchID:   92,
		CardNumber: "09120000000",
		Items: []allocation.LineItem{
			{ID: "1", Title: "Wash", Amount: "100000"},
			{ID: "2", Title: "Polish", Amount: "50000"},
		},
		Credit:        decimal.NewFromInt(120000),
		CreditOption:  split.OptionUseCredit,
		MerchantSheba: merchantSheba,
	}
}

func TestCheckout_SplitCharge(t *testing.T) {
	store := new(MockStore)
	driver := new(MockDriver)
	svc := newService(store, driver)

	driver.On("PurchaseSplit", mock.Anything, mock.MatchedBy(func(req terminal.SplitPurchaseRequest) bool {
		// 30000 toman payable, transmitted in rial
		return req.Amount == "300000" && req.Percent1 == 3 && req.Percent2 == 97 &&
			req.Sheba2 == merchantSheba
	})).Return(&terminal.Result{Succeeded: true, Code: "00"}, nil)
	store.On("SaveTransaction", mock.Anything, mock.Anything).Return(nil)

	receipt, err := svc.Checkout(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.Equal(t, models.TransactionStatusCompleted, receipt.Transaction.Status)
	assert.Equal(t, "120000", receipt.Transaction.CreditUsed.String())
	assert.Equal(t, "30000", receipt.Transaction.PayableAmount.String())
	assert.Equal(t, 3, receipt.Transaction.PlatformPercent)
	assert.Equal(t, 97, receipt.Transaction.MerchantPercent)

	require.Len(t, receipt.Transaction.Lines, 2)
	assert.Equal(t, 1, receipt.Transaction.Lines[0].LineID)
	assert.Equal(t, "100000", receipt.Transaction.Lines[0].Price)
	assert.Equal(t, int64(100000), receipt.Transaction.Lines[0].PayFromCredit)
	assert.Equal(t, int64(20000), receipt.Transaction.Lines[1].PayFromCredit)
	assert.Equal(t, DefaultPaymentMethod, receipt.Transaction.Lines[0].PaymentMethod)

	store.AssertExpectations(t)
	driver.AssertExpectations(t)
}

func TestCheckout_CreditCoversEverything(t *testing.T) {
	store := new(MockStore)
	driver := new(MockDriver)
	svc := newService(store, driver)

	store.On("SaveTransaction", mock.Anything, mock.Anything).Return(nil)

	req := baseRequest()
	req.Credit = decimal.NewFromInt(500000)

	receipt, err := svc.Checkout(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, receipt.Transaction.PayableAmount.IsZero())
	assert.Nil(t, receipt.Split)
	assert.Nil(t, receipt.Terminal)
	driver.AssertNotCalled(t, "Purchase", mock.Anything, mock.Anything)
	driver.AssertNotCalled(t, "PurchaseSplit", mock.Anything, mock.Anything)
}

func TestCheckout_SaveForLaterSkipsSplit(t *testing.T) {
	store := new(MockStore)
	driver := new(MockDriver)
	svc := newService(store, driver)

	// platform at 0% means a plain purchase, not a tashim charge
	driver.On("Purchase", mock.Anything, mock.MatchedBy(func(req terminal.PurchaseRequest) bool {
		return req.Amount == "1500000"
	})).Return(&terminal.Result{Succeeded: true, Code: "00"}, nil)
	store.On("SaveTransaction", mock.Anything, mock.Anything).Return(nil)

	req := baseRequest()
	req.CreditOption = split.OptionSaveForLater

	receipt, err := svc.Checkout(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 0, receipt.Split.PlatformPercent)
	assert.Equal(t, 100, receipt.Split.MerchantPercent)
	assert.True(t, receipt.Transaction.CreditUsed.IsZero())
	driver.AssertExpectations(t)
}

func TestCheckout_InvalidDestinationBlocksTerminal(t *testing.T) {
	store := new(MockStore)
	driver := new(MockDriver)
	svc := newService(store, driver)

	req := baseRequest()
	req.MerchantSheba = "IR000000000000000000000000"

	_, err := svc.Checkout(context.Background(), req)
	assert.ErrorIs(t, err, split.ErrInvalidDestination)

	driver.AssertNotCalled(t, "Purchase", mock.Anything, mock.Anything)
	driver.AssertNotCalled(t, "PurchaseSplit", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "SaveTransaction", mock.Anything, mock.Anything)
}

func TestCheckout_DeclinedIsRecorded(t *testing.T) {
	store := new(MockStore)
	driver := new(MockDriver)
	svc := newService(store, driver)

	driver.On("PurchaseSplit", mock.Anything, mock.Anything).
		Return(&terminal.Result{Succeeded: false, Code: "55"}, nil)
	store.On("SaveTransaction", mock.Anything, mock.MatchedBy(func(tx *models.Transaction) bool {
		return tx.Status == models.TransactionStatusDeclined && tx.ResultCode == "55"
	})).Return(nil)

	receipt, err := svc.Checkout(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrPaymentDeclined)
	require.NotNil(t, receipt)
	assert.Equal(t, models.TransactionStatusDeclined, receipt.Transaction.Status)
	store.AssertExpectations(t)
}

func TestCheckout_NoPricedItems(t *testing.T) {
	store := new(MockStore)
	driver := new(MockDriver)
	svc := newService(store, driver)

	req := baseRequest()
	req.Items = []allocation.LineItem{
		{ID: "1", Title: "Wash", Amount: ""},
		{ID: "2", Title: "Polish", Amount: "0"},
	}

	_, err := svc.Checkout(context.Background(), req)
	assert.ErrorIs(t, err, ErrNoPricedItems)
}

func TestCheckout_InvalidLineID(t *testing.T) {
	store := new(MockStore)
	driver := new(MockDriver)
	svc := newService(store, driver)

	req := baseRequest()
	req.Items = []allocation.LineItem{{ID: "abc", Title: "Wash", Amount: "1000"}}

	_, err := svc.Checkout(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidLineID)
}
