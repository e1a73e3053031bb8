package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
)

func TestBidRepository_CurrentBid(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewBidRepository(sqlxDB)

	ctx := context.Background()

	t.Run("highest_bid_wins", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("COALESCE((SELECT MAX(amount) FROM bids WHERE item_id = $1), i.starting_bid)")).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"current_bid"}).AddRow("15.50"))

		current, err := repo.CurrentBid(ctx, 1)
		require.NoError(t, err)
		require.True(t, current.Equal(decimal.RequireFromString("15.50")))
	})

	t.Run("item_not_found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("COALESCE((SELECT MAX(amount) FROM bids WHERE item_id = $1), i.starting_bid)")).
			WithArgs(int64(42)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.CurrentBid(ctx, 42)
		require.ErrorIs(t, err, auctionerrors.ErrItemNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBidRepository_Append(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewBidRepository(sqlxDB)

	ctx := context.Background()
	bidTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	bid := &models.Bid{
		ItemID:  1,
		UserID:  2,
		Amount:  decimal.NewFromInt(15),
		BidTime: bidTime,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bids")).
		WithArgs(int64(1), int64(2), bid.Amount, bidTime).
		WillReturnRows(sqlmock.NewRows([]string{"bid_id"}).AddRow(int64(8)))

	require.NoError(t, repo.Append(ctx, bid))
	require.Equal(t, int64(8), bid.BidID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBidRepository_BidHistory(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewBidRepository(sqlxDB)

	ctx := context.Background()
	bidTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	columns := []string{"item_id", "user_id", "amount", "bid_time", "first_name", "last_name"}

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY b.bid_time DESC")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), int64(3), "15", bidTime, "Carol", "Counter").
			AddRow(int64(1), int64(2), "11", bidTime.Add(-time.Minute), "Bob", "Bidder"))

	bids, err := repo.BidHistory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, bids, 2)
	require.True(t, bids[0].Amount.Equal(decimal.NewFromInt(15)))
	require.Equal(t, "Carol", bids[0].BidderFirstName)
	require.Equal(t, "Bob", bids[1].BidderFirstName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBidRepository_ItemsBidOnBy(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewBidRepository(sqlxDB)

	ctx := context.Background()
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("MAX(bid_time) AS last_bid")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(summaryColumns).AddRow(
			int64(1), "clock", "antique clock", "10", start, start.Add(time.Hour),
			int64(9), "Sally", "Seller"))

	items, err := repo.ItemsBidOnBy(ctx, 2)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, int64(1), items[0].ItemID)
	require.NoError(t, mock.ExpectationsWereMet())
}
