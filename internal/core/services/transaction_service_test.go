package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bankcore/txn_limit_app/internal/apperrors"
	"github.com/bankcore/txn_limit_app/internal/core/domain"
	"github.com/bankcore/txn_limit_app/internal/core/services"
	"github.com/bankcore/txn_limit_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindExceededTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SumSpentInMonth(ctx context.Context, category domain.ExpenseCategory, upTo time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, category, upTo)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

// --- Mock LimitRepository ---
type MockLimitRepository struct {
	mock.Mock
}

func (m *MockLimitRepository) FindLatestLimit(ctx context.Context, category domain.ExpenseCategory, asOf time.Time) (*domain.Limit, error) {
	args := m.Called(ctx, category, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Limit), args.Error(1)
}

func (m *MockLimitRepository) ListLimits(ctx context.Context) ([]domain.Limit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Limit), args.Error(1)
}

func (m *MockLimitRepository) SaveLimit(ctx context.Context, limit domain.Limit) error {
	args := m.Called(ctx, limit)
	return args.Error(0)
}

// --- Mock RateResolver ---
type MockRateResolver struct {
	mock.Mock
}

func (m *MockRateResolver) GetRate(ctx context.Context, currency string, date time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, currency, date)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockRateResolver) FetchRatesForDate(ctx context.Context, currency string, date time.Time) error {
	args := m.Called(ctx, currency, date)
	return args.Error(0)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockLimitRepo    *MockLimitRepository
	mockRateResolver *MockRateResolver
	clock            *fixedClock
	service          *services.TransactionService
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockLimitRepo = new(MockLimitRepository)
	suite.mockRateResolver = new(MockRateResolver)
	suite.clock = &fixedClock{now: time.Date(2025, 4, 15, 20, 0, 0, 0, time.UTC)}
	suite.service = services.NewTransactionService(
		suite.mockTxnRepo,
		suite.mockLimitRepo,
		suite.mockRateResolver,
		suite.clock,
	)
}

func (suite *TransactionServiceTestSuite) validRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		AccountFrom:       "0000000123",
		AccountTo:         "9999999999",
		CurrencyShortname: "KZT",
		Sum:               decimal.NewFromInt(10000),
		ExpenseCategory:   "product",
		Datetime:          time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC),
	}
}

func (suite *TransactionServiceTestSuite) existingLimit(sum int64) *domain.Limit {
	return &domain.Limit{
		LimitID:           uuid.NewString(),
		Category:          domain.CategoryProduct,
		LimitSum:          decimal.NewFromInt(sum),
		CurrencyCode:      domain.CurrencyUSD,
		EffectiveDatetime: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

// --- ProcessTransaction ---

func (suite *TransactionServiceTestSuite) TestProcessTransaction_WithinLimit() {
	ctx := context.Background()
	req := suite.validRequest()
	limit := suite.existingLimit(1000)

	suite.mockLimitRepo.On("FindLatestLimit", ctx, domain.CategoryProduct, req.Datetime).
		Return(limit, nil).Once()
	// 10000 KZT at 0.0021 USD/KZT converts to 21.00 USD.
	suite.mockRateResolver.On("GetRate", ctx, "KZT", req.Datetime).
		Return(decimal.RequireFromString("0.0021"), nil).Once()
	suite.mockTxnRepo.On("SumSpentInMonth", ctx, domain.CategoryProduct, req.Datetime).
		Return(decimal.Zero, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return !txn.LimitExceeded && txn.Category == domain.CategoryProduct
	})).Return(nil).Once()

	resp, err := suite.service.ProcessTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.False(resp.LimitExceeded)
	suite.Equal("PRODUCT", resp.ExpenseCategory)
	suite.Require().NotNil(resp.LimitSum)
	suite.True(resp.LimitSum.Equal(decimal.NewFromInt(1000)))
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockLimitRepo.AssertExpectations(suite.T())
	suite.mockRateResolver.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestProcessTransaction_ExceedsLimit() {
	ctx := context.Background()
	req := suite.validRequest()
	limit := suite.existingLimit(1000)

	suite.mockLimitRepo.On("FindLatestLimit", ctx, domain.CategoryProduct, req.Datetime).
		Return(limit, nil).Once()
	suite.mockRateResolver.On("GetRate", ctx, "KZT", req.Datetime).
		Return(decimal.RequireFromString("0.0021"), nil).Once()
	// 990 already spent + 21.00 = 1011 > 1000.
	suite.mockTxnRepo.On("SumSpentInMonth", ctx, domain.CategoryProduct, req.Datetime).
		Return(decimal.NewFromInt(990), nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.LimitExceeded
	})).Return(nil).Once()

	resp, err := suite.service.ProcessTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.True(resp.LimitExceeded)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestProcessTransaction_ExactlyAtLimitNotExceeded() {
	ctx := context.Background()
	req := suite.validRequest()
	limit := suite.existingLimit(1000)

	suite.mockLimitRepo.On("FindLatestLimit", ctx, domain.CategoryProduct, req.Datetime).
		Return(limit, nil).Once()
	suite.mockRateResolver.On("GetRate", ctx, "KZT", req.Datetime).
		Return(decimal.RequireFromString("0.0021"), nil).Once()
	// 979 + 21.00 = 1000: exceedance is strictly greater-than.
	suite.mockTxnRepo.On("SumSpentInMonth", ctx, domain.CategoryProduct, req.Datetime).
		Return(decimal.NewFromInt(979), nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return !txn.LimitExceeded
	})).Return(nil).Once()

	resp, err := suite.service.ProcessTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.False(resp.LimitExceeded)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestProcessTransaction_CreatesDefaultLimit() {
	ctx := context.Background()
	req := suite.validRequest()
	req.ExpenseCategory = "SERVICE"
	req.CurrencyShortname = "USD"
	req.Sum = decimal.NewFromInt(50)

	suite.mockLimitRepo.On("FindLatestLimit", ctx, domain.CategoryService, req.Datetime).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockLimitRepo.On("SaveLimit", ctx, mock.MatchedBy(func(limit domain.Limit) bool {
		return limit.Category == domain.CategoryService &&
			limit.LimitSum.Equal(decimal.NewFromInt(1000)) &&
			limit.CurrencyCode == domain.CurrencyUSD &&
			limit.EffectiveDatetime.Equal(suite.clock.now)
	})).Return(nil).Once()
	suite.mockRateResolver.On("GetRate", ctx, "USD", req.Datetime).
		Return(decimal.NewFromInt(1), nil).Once()
	suite.mockTxnRepo.On("SumSpentInMonth", ctx, domain.CategoryService, req.Datetime).
		Return(decimal.Zero, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Return(nil).Once()

	resp, err := suite.service.ProcessTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.False(resp.LimitExceeded)
	suite.Require().NotNil(resp.LimitSum)
	suite.True(resp.LimitSum.Equal(decimal.NewFromInt(1000)))
	suite.mockLimitRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestProcessTransaction_UnknownCategory() {
	ctx := context.Background()
	req := suite.validRequest()
	req.ExpenseCategory = "GROCERIES"

	resp, err := suite.service.ProcessTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLimitRepo.AssertNotCalled(suite.T(), "FindLatestLimit")
}

func (suite *TransactionServiceTestSuite) TestProcessTransaction_NonPositiveSum() {
	ctx := context.Background()
	req := suite.validRequest()
	req.Sum = decimal.Zero

	resp, err := suite.service.ProcessTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestProcessTransaction_FutureDatetime() {
	ctx := context.Background()
	req := suite.validRequest()
	req.Datetime = suite.clock.now.Add(time.Hour)

	resp, err := suite.service.ProcessTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransactionServiceTestSuite) TestProcessTransaction_RateUnavailable() {
	ctx := context.Background()
	req := suite.validRequest()
	limit := suite.existingLimit(1000)
	rateErr := apperrors.ErrRateUnavailable

	suite.mockLimitRepo.On("FindLatestLimit", ctx, domain.CategoryProduct, req.Datetime).
		Return(limit, nil).Once()
	suite.mockRateResolver.On("GetRate", ctx, "KZT", req.Datetime).
		Return(decimal.Zero, rateErr).Once()

	resp, err := suite.service.ProcessTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrRateUnavailable)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

// --- GetExceededTransactions ---

func (suite *TransactionServiceTestSuite) TestGetExceededTransactions_PairsWithLimits() {
	ctx := context.Background()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountFrom:   "0000000123",
		AccountTo:     "9999999999",
		CurrencyCode:  "KZT",
		Sum:           decimal.NewFromInt(10000),
		Category:      domain.CategoryProduct,
		Datetime:      time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC),
		LimitExceeded: true,
	}
	limit := suite.existingLimit(500)

	suite.mockTxnRepo.On("FindExceededTransactions", ctx).
		Return([]domain.Transaction{txn}, nil).Once()
	suite.mockLimitRepo.On("FindLatestLimit", ctx, domain.CategoryProduct, txn.Datetime).
		Return(limit, nil).Once()

	resps, err := suite.service.GetExceededTransactions(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(resps, 1)
	suite.Equal(txn.TransactionID, resps[0].TransactionID)
	suite.True(resps[0].LimitExceeded)
	suite.Require().NotNil(resps[0].LimitSum)
	suite.True(resps[0].LimitSum.Equal(decimal.NewFromInt(500)))
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockLimitRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestGetExceededTransactions_MissingLimitReturnedWithoutSnapshot() {
	ctx := context.Background()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Category:      domain.CategoryService,
		Datetime:      time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC),
		LimitExceeded: true,
	}

	suite.mockTxnRepo.On("FindExceededTransactions", ctx).
		Return([]domain.Transaction{txn}, nil).Once()
	suite.mockLimitRepo.On("FindLatestLimit", ctx, domain.CategoryService, txn.Datetime).
		Return(nil, apperrors.ErrNotFound).Once()

	resps, err := suite.service.GetExceededTransactions(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(resps, 1)
	suite.Nil(resps[0].LimitSum)
	suite.Nil(resps[0].LimitDatetime)
	suite.Empty(resps[0].LimitCurrencyShortname)
}

func (suite *TransactionServiceTestSuite) TestGetExceededTransactions_Empty() {
	ctx := context.Background()

	suite.mockTxnRepo.On("FindExceededTransactions", ctx).
		Return([]domain.Transaction{}, nil).Once()

	resps, err := suite.service.GetExceededTransactions(ctx)

	suite.Require().NoError(err)
	suite.Empty(resps)
	suite.mockLimitRepo.AssertNotCalled(suite.T(), "FindLatestLimit")
}

// --- Run Suite ---
func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
