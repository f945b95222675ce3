package impl

import (
	"context"
	"testing"

	"mahsoulna/internal/domain/entity"
	domainerrors "mahsoulna/internal/domain/errors"
	"mahsoulna/internal/domain/repository"
	mockRepo "mahsoulna/internal/mocks/repository"
	"mahsoulna/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service      usecase.CheckoutUsecase
	locationRepo *mockRepo.MockLocationRepository
	orderRepo    *mockRepo.MockOrderRepository
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("LocationRepo").Return(locationRepo).Maybe()
	factory.On("OrderRepo").Return(orderRepo).Maybe()

	service := &checkoutService{
		txManager: &fakeTxManager{factory: factory},
		orderRepo: orderRepo,
		logger:    discardLogger(),
	}

	return checkoutServiceFixtures{
		service:      service,
		locationRepo: locationRepo,
		orderRepo:    orderRepo,
	}
}

func placeOrderInput() *usecase.PlaceOrderInput {
	return &usecase.PlaceOrderInput{
		UserID:       7,
		OrderReceipt: 4830125791,
		Location: usecase.DeliveryLocation{
			Latitude:  33.8937912,
			Longitude: 35.5017767,
			Address:   "Hamra Street",
		},
		Lines: []entity.OrderLine{
			{ProductID: 1, Name: "Olive Oil 1L", Price: decimal.RequireFromString("12.50"), Quantity: 2},
			{ProductID: 9, Name: "Zaatar 500g", Price: decimal.RequireFromString("4.25"), Quantity: 1},
		},
		TotalAmount: decimal.RequireFromString("32.25"),
		ChangeFor:   decimal.RequireFromString("50.00"),
		SpecialReq:  "ring the bell twice",
	}
}

func TestCheckoutService_PlaceOrder_Success(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	input := placeOrderInput()

	fx.locationRepo.On("Resolve", ctx, mock.AnythingOfType("*entity.Location")).
		Run(func(args mock.Arguments) {
			loc := args.Get(1).(*entity.Location)
			assert.Equal(t, input.Location.Latitude, loc.Latitude)
			assert.Equal(t, input.Location.Longitude, loc.Longitude)
			assert.Equal(t, input.Location.Address, loc.Address)
		}).
		Return(int64(42), nil)

	fx.orderRepo.On("CreateOrder", ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) {
			order := args.Get(1).(*entity.Order)
			order.ID = 1001

			assert.Equal(t, int64(42), order.LocationID)
			assert.Equal(t, entity.OrderStatusInProgress, order.OrderStatus)
			assert.Equal(t, input.OrderReceipt, order.OrderReceipt)
			assert.True(t, input.TotalAmount.Equal(order.TotalAmount))
		}).
		Return(nil)

	fx.orderRepo.On("CreateOrderLines", ctx, int64(1001), input.Lines).Return(nil)

	output, err := fx.service.PlaceOrder(ctx, input)

	require.NoError(t, err)
	assert.False(t, output.Replayed)
	assert.Equal(t, int64(1001), output.Order.ID)
	assert.Equal(t, input.UserID, output.Order.UserID)
}

func TestCheckoutService_PlaceOrder_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	input := placeOrderInput()
	input.Lines = nil

	output, err := fx.service.PlaceOrder(context.Background(), input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestCheckoutService_PlaceOrder_LocationFailureRollsBack(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	input := placeOrderInput()

	fx.locationRepo.On("Resolve", ctx, mock.AnythingOfType("*entity.Location")).
		Return(int64(0), errors.New("connection reset"))

	output, err := fx.service.PlaceOrder(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	fx.orderRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	fx.orderRepo.AssertNotCalled(t, "CreateOrderLines", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckoutService_PlaceOrder_LineWriteFailureRollsBack(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	input := placeOrderInput()

	fx.locationRepo.On("Resolve", ctx, mock.AnythingOfType("*entity.Location")).
		Return(int64(42), nil)
	fx.orderRepo.On("CreateOrder", ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Order).ID = 1002
		}).
		Return(nil)
	fx.orderRepo.On("CreateOrderLines", ctx, int64(1002), input.Lines).
		Return(errors.New("disk full"))

	output, err := fx.service.PlaceOrder(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
}

func TestCheckoutService_PlaceOrder_DuplicateReceiptReplaysOriginal(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	input := placeOrderInput()

	original := &entity.Order{
		ID:           900,
		UserID:       input.UserID,
		OrderReceipt: input.OrderReceipt,
		OrderStatus:  entity.OrderStatusInProgress,
		TotalAmount:  input.TotalAmount,
	}

	fx.locationRepo.On("Resolve", ctx, mock.AnythingOfType("*entity.Location")).
		Return(int64(42), nil)
	fx.orderRepo.On("CreateOrder", ctx, mock.AnythingOfType("*entity.Order")).
		Return(repository.ErrDuplicateReceipt)
	fx.orderRepo.On("FindByReceipt", ctx, input.UserID, input.OrderReceipt).
		Return(original, nil)

	output, err := fx.service.PlaceOrder(ctx, input)

	require.NoError(t, err)
	assert.True(t, output.Replayed)
	assert.Equal(t, original, output.Order)
	fx.orderRepo.AssertNotCalled(t, "CreateOrderLines", mock.Anything, mock.Anything, mock.Anything)
}
