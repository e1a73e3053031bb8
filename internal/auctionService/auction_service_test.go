package auction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/internal/repository"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// Tests PlaceBid
func TestAuctionService_PlaceBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockItems := repository.NewMockItemDB(ctrl)
	mockLedger := repository.NewMockBidLedger(ctrl)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service := NewAuctionService(mockItems, mockLedger).WithClock(fixedClock(now))

	ctx := context.Background()

	// Table-driven test cases
	tests := []struct {
		name          string
		itemID        int64
		userID        int64
		amount        decimal.Decimal
		mockSetup     func()
		expectedError error
	}{
		{
			name:   "valid_first_bid",
			itemID: 1,
			userID: 2,
			amount: decimal.NewFromInt(11),
			mockSetup: func() {
				mockItems.EXPECT().GetCreator(ctx, int64(1)).Return(int64(9), nil)
				mockLedger.EXPECT().CurrentBid(ctx, int64(1)).Return(decimal.NewFromInt(10), nil)
				mockLedger.EXPECT().Append(ctx, gomock.Any()).Return(nil)
			},
		},
		{
			name:          "missing_item_id",
			itemID:        0,
			userID:        2,
			amount:        decimal.NewFromInt(11),
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "zero_amount",
			itemID:        1,
			userID:        2,
			amount:        decimal.Zero,
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "negative_amount",
			itemID:        1,
			userID:        2,
			amount:        decimal.NewFromInt(-5),
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:   "item_not_found",
			itemID: 42,
			userID: 2,
			amount: decimal.NewFromInt(11),
			mockSetup: func() {
				mockItems.EXPECT().GetCreator(ctx, int64(42)).
					Return(int64(0), auctionerrors.ErrItemNotFound)
			},
			expectedError: auctionerrors.ErrItemNotFound,
		},
		{
			name:   "seller_cannot_bid",
			itemID: 1,
			userID: 9,
			amount: decimal.NewFromInt(100),
			mockSetup: func() {
				mockItems.EXPECT().GetCreator(ctx, int64(1)).Return(int64(9), nil)
			},
			expectedError: auctionerrors.ErrSellerCannotBid,
		},
		{
			name:   "bid_below_current",
			itemID: 1,
			userID: 2,
			amount: decimal.NewFromInt(9),
			mockSetup: func() {
				mockItems.EXPECT().GetCreator(ctx, int64(1)).Return(int64(9), nil)
				mockLedger.EXPECT().CurrentBid(ctx, int64(1)).Return(decimal.NewFromInt(10), nil)
			},
			expectedError: auctionerrors.ErrBidTooLow,
		},
		{
			name:   "bid_equal_to_current_rejected",
			itemID: 1,
			userID: 2,
			amount: decimal.NewFromInt(10),
			mockSetup: func() {
				mockItems.EXPECT().GetCreator(ctx, int64(1)).Return(int64(9), nil)
				mockLedger.EXPECT().CurrentBid(ctx, int64(1)).Return(decimal.NewFromInt(10), nil)
			},
			expectedError: auctionerrors.ErrBidTooLow,
		},
		{
			name:   "ledger_write_fails",
			itemID: 1,
			userID: 2,
			amount: decimal.NewFromInt(20),
			mockSetup: func() {
				mockItems.EXPECT().GetCreator(ctx, int64(1)).Return(int64(9), nil)
				mockLedger.EXPECT().CurrentBid(ctx, int64(1)).Return(decimal.NewFromInt(10), nil)
				mockLedger.EXPECT().Append(ctx, gomock.Any()).Return(errors.New("ledger write failed"))
			},
			expectedError: nil, // service wraps the repo error, no sentinel to match
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			bid, err := service.PlaceBid(ctx, tc.itemID, tc.userID, tc.amount)

			switch {
			case tc.expectedError != nil:
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
			case tc.name == "ledger_write_fails":
				require.Error(t, err)
			default:
				require.NoError(t, err)
				require.Equal(t, tc.itemID, bid.ItemID)
				require.Equal(t, tc.userID, bid.UserID)
				require.True(t, bid.Amount.Equal(tc.amount))
				require.Equal(t, now, bid.BidTime)
			}
		})
	}
}

// Tests CreateItem
func TestAuctionService_CreateItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockItems := repository.NewMockItemDB(ctrl)
	mockLedger := repository.NewMockBidLedger(ctrl)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service := NewAuctionService(mockItems, mockLedger).WithClock(fixedClock(now))

	ctx := context.Background()

	t.Run("valid_item", func(t *testing.T) {
		mockItems.EXPECT().CreateItem(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, item *models.Item) (int64, error) {
				require.Equal(t, now, item.StartDate)
				require.Equal(t, int64(7), item.CreatorID)
				item.ItemID = 3
				return int64(3), nil
			})

		itemID, err := service.CreateItem(ctx, 7, "clock", "antique clock",
			decimal.NewFromInt(10), now.Add(time.Hour))
		require.NoError(t, err)
		require.Equal(t, int64(3), itemID)
	})

	t.Run("end_date_in_past", func(t *testing.T) {
		_, err := service.CreateItem(ctx, 7, "clock", "antique clock",
			decimal.NewFromInt(10), now.Add(-time.Hour))
		require.ErrorIs(t, err, auctionerrors.ErrInvalidInput)
	})

	t.Run("end_date_equal_to_now", func(t *testing.T) {
		_, err := service.CreateItem(ctx, 7, "clock", "antique clock",
			decimal.NewFromInt(10), now)
		require.ErrorIs(t, err, auctionerrors.ErrInvalidInput)
	})

	t.Run("non_positive_starting_bid", func(t *testing.T) {
		_, err := service.CreateItem(ctx, 7, "clock", "antique clock",
			decimal.Zero, now.Add(time.Hour))
		require.ErrorIs(t, err, auctionerrors.ErrInvalidInput)
	})

	t.Run("missing_name", func(t *testing.T) {
		_, err := service.CreateItem(ctx, 7, "", "antique clock",
			decimal.NewFromInt(10), now.Add(time.Hour))
		require.ErrorIs(t, err, auctionerrors.ErrInvalidInput)
	})
}

// Tests Search
func TestAuctionService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockItems := repository.NewMockItemDB(ctrl)
	mockLedger := repository.NewMockBidLedger(ctrl)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service := NewAuctionService(mockItems, mockLedger).WithClock(fixedClock(now))

	ctx := context.Background()

	t.Run("unknown_status", func(t *testing.T) {
		_, err := service.Search(ctx, "", "SOLD", 1, 10, 0)
		require.ErrorIs(t, err, auctionerrors.ErrInvalidInput)
	})

	t.Run("status_filter_requires_auth", func(t *testing.T) {
		_, err := service.Search(ctx, "", repository.StatusOpen, 0, 10, 0)
		require.ErrorIs(t, err, auctionerrors.ErrAuthRequired)
	})

	t.Run("anonymous_default_view_allowed", func(t *testing.T) {
		mockItems.EXPECT().Search(ctx, repository.SearchFilter{
			Query:  "clock",
			Status: "",
			UserID: 0,
			Now:    now,
			Limit:  DefaultSearchLimit,
			Offset: 0,
		}).Return(nil, nil)

		items, err := service.Search(ctx, "clock", "", 0, 0, -3)
		require.NoError(t, err)
		require.NotNil(t, items)
		require.Empty(t, items)
	})

	t.Run("limit_clamped", func(t *testing.T) {
		mockItems.EXPECT().Search(ctx, repository.SearchFilter{
			Query:  "",
			Status: repository.StatusBid,
			UserID: 4,
			Now:    now,
			Limit:  MaxSearchLimit,
			Offset: 20,
		}).Return([]models.ItemSummary{{ItemID: 1}}, nil)

		items, err := service.Search(ctx, "", repository.StatusBid, 4, 5000, 20)
		require.NoError(t, err)
		require.Len(t, items, 1)
	})
}

// Tests GetBidHistory
func TestAuctionService_GetBidHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockItems := repository.NewMockItemDB(ctrl)
	mockLedger := repository.NewMockBidLedger(ctrl)

	service := NewAuctionService(mockItems, mockLedger)

	ctx := context.Background()

	t.Run("item_not_found", func(t *testing.T) {
		mockItems.EXPECT().GetCreator(ctx, int64(5)).
			Return(int64(0), auctionerrors.ErrItemNotFound)

		_, err := service.GetBidHistory(ctx, 5)
		require.ErrorIs(t, err, auctionerrors.ErrItemNotFound)
	})

	t.Run("no_bids_returns_empty_slice", func(t *testing.T) {
		mockItems.EXPECT().GetCreator(ctx, int64(5)).Return(int64(9), nil)
		mockLedger.EXPECT().BidHistory(ctx, int64(5)).Return(nil, nil)

		bids, err := service.GetBidHistory(ctx, 5)
		require.NoError(t, err)
		require.NotNil(t, bids)
		require.Empty(t, bids)
	})

	t.Run("history_passed_through", func(t *testing.T) {
		records := []models.BidRecord{
			{ItemID: 5, UserID: 2, Amount: decimal.NewFromInt(15)},
			{ItemID: 5, UserID: 3, Amount: decimal.NewFromInt(11)},
		}
		mockItems.EXPECT().GetCreator(ctx, int64(5)).Return(int64(9), nil)
		mockLedger.EXPECT().BidHistory(ctx, int64(5)).Return(records, nil)

		bids, err := service.GetBidHistory(ctx, 5)
		require.NoError(t, err)
		require.Equal(t, records, bids)
	})
}

// Tests GetItem
func TestAuctionService_GetItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockItems := repository.NewMockItemDB(ctrl)
	mockLedger := repository.NewMockBidLedger(ctrl)

	service := NewAuctionService(mockItems, mockLedger)

	ctx := context.Background()

	t.Run("invalid_id", func(t *testing.T) {
		_, err := service.GetItem(ctx, 0)
		require.ErrorIs(t, err, auctionerrors.ErrInvalidInput)
	})

	t.Run("found", func(t *testing.T) {
		view := &models.ItemView{CurrentBid: decimal.NewFromInt(10)}
		mockItems.EXPECT().GetItem(ctx, int64(1)).Return(view, nil)

		got, err := service.GetItem(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, view, got)
	})
}
