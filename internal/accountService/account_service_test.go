package account

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/utils"
)

func newService(ctrl *gomock.Controller) (*AccountService, *repository.MockUserDB, *repository.MockItemDB, *repository.MockBidLedger) {
	mockUsers := repository.NewMockUserDB(ctrl)
	mockItems := repository.NewMockItemDB(ctrl)
	mockLedger := repository.NewMockBidLedger(ctrl)
	return NewAccountService(mockUsers, mockItems, mockLedger), mockUsers, mockItems, mockLedger
}

// Tests Register
func TestAccountService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockUsers, _, _ := newService(ctrl)
	ctx := context.Background()

	t.Run("stores_salted_verifier_not_password", func(t *testing.T) {
		var stored *models.User
		mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, user *models.User) (int64, error) {
				stored = user
				return int64(1), nil
			})

		userID, err := service.Register(ctx, "Ada", "Lovelace", "ada@example.com", "Str0ng!pass")
		require.NoError(t, err)
		require.Equal(t, int64(1), userID)

		require.NotEmpty(t, stored.Salt)
		require.NotEmpty(t, stored.PasswordHash)
		require.NotEqual(t, "Str0ng!pass", stored.PasswordHash)

		ok, err := utils.VerifyPassword("Str0ng!pass", stored.Salt, stored.PasswordHash)
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("duplicate_email", func(t *testing.T) {
		mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).
			Return(int64(0), auctionerrors.ErrDuplicateEmail)

		_, err := service.Register(ctx, "Ada", "Lovelace", "ada@example.com", "Str0ng!pass")
		require.ErrorIs(t, err, auctionerrors.ErrDuplicateEmail)
	})

	t.Run("missing_fields", func(t *testing.T) {
		_, err := service.Register(ctx, "", "Lovelace", "ada@example.com", "Str0ng!pass")
		require.ErrorIs(t, err, auctionerrors.ErrInvalidInput)
	})
}

// Tests Login
func TestAccountService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockUsers, _, _ := newService(ctrl)
	ctx := context.Background()

	salt, err := utils.GenerateSalt()
	require.NoError(t, err)
	hash, err := utils.HashPassword("Str0ng!pass", salt)
	require.NoError(t, err)

	storedUser := &models.User{
		UserID:       7,
		Email:        "ada@example.com",
		PasswordHash: hash,
		Salt:         salt,
	}

	t.Run("unknown_email", func(t *testing.T) {
		mockUsers.EXPECT().GetUserByEmail(ctx, "nobody@example.com").
			Return(nil, auctionerrors.ErrUserNotFound)

		_, _, err := service.Login(ctx, "nobody@example.com", "Str0ng!pass")
		require.ErrorIs(t, err, auctionerrors.ErrUserNotFound)
	})

	t.Run("wrong_password", func(t *testing.T) {
		mockUsers.EXPECT().GetUserByEmail(ctx, "ada@example.com").Return(storedUser, nil)

		_, _, err := service.Login(ctx, "ada@example.com", "wrong-pass")
		require.ErrorIs(t, err, auctionerrors.ErrInvalidCredentials)
	})

	t.Run("issues_fresh_token", func(t *testing.T) {
		mockUsers.EXPECT().GetUserByEmail(ctx, "ada@example.com").Return(storedUser, nil)
		mockUsers.EXPECT().GetToken(ctx, int64(7)).Return("", nil)

		var issued string
		mockUsers.EXPECT().SetToken(ctx, int64(7), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, token string) error {
				issued = token
				return nil
			})

		userID, token, err := service.Login(ctx, "ada@example.com", "Str0ng!pass")
		require.NoError(t, err)
		require.Equal(t, int64(7), userID)
		require.NotEmpty(t, token)
		require.Equal(t, issued, token)
	})

	t.Run("reuses_existing_token", func(t *testing.T) {
		mockUsers.EXPECT().GetUserByEmail(ctx, "ada@example.com").Return(storedUser, nil)
		mockUsers.EXPECT().GetToken(ctx, int64(7)).Return("existing-token", nil)

		_, token, err := service.Login(ctx, "ada@example.com", "Str0ng!pass")
		require.NoError(t, err)
		require.Equal(t, "existing-token", token)
	})
}

// Tests ResolveToken and Logout
func TestAccountService_Sessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockUsers, _, _ := newService(ctrl)
	ctx := context.Background()

	t.Run("resolve_empty_token", func(t *testing.T) {
		_, err := service.ResolveToken(ctx, "")
		require.True(t, IsInvalidToken(err))
	})

	t.Run("resolve_unknown_token", func(t *testing.T) {
		mockUsers.EXPECT().GetIDFromToken(ctx, "stale").
			Return(int64(0), auctionerrors.ErrInvalidToken)

		_, err := service.ResolveToken(ctx, "stale")
		require.True(t, IsInvalidToken(err))
	})

	t.Run("resolve_active_token", func(t *testing.T) {
		mockUsers.EXPECT().GetIDFromToken(ctx, "active").Return(int64(7), nil)

		userID, err := service.ResolveToken(ctx, "active")
		require.NoError(t, err)
		require.Equal(t, int64(7), userID)
	})

	t.Run("logout_unknown_token_is_idempotent", func(t *testing.T) {
		mockUsers.EXPECT().ClearToken(ctx, "stale").Return(nil)

		require.NoError(t, service.Logout(ctx, "stale"))
	})

	t.Run("logout_empty_token", func(t *testing.T) {
		err := service.Logout(ctx, "")
		require.True(t, IsInvalidToken(err))
	})
}

// Tests Profile
func TestAccountService_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockUsers, mockItems, mockLedger := newService(ctrl)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service.WithClock(func() time.Time { return now })

	ctx := context.Background()

	t.Run("unknown_user", func(t *testing.T) {
		mockUsers.EXPECT().GetUserByID(ctx, int64(42)).
			Return(nil, auctionerrors.ErrUserNotFound)

		_, err := service.Profile(ctx, 42)
		require.ErrorIs(t, err, auctionerrors.ErrUserNotFound)
	})

	t.Run("empty_sections_are_slices_not_nil", func(t *testing.T) {
		mockUsers.EXPECT().GetUserByID(ctx, int64(7)).
			Return(&models.User{UserID: 7, FirstName: "Ada", LastName: "Lovelace"}, nil)
		mockItems.EXPECT().ListByCreator(ctx, int64(7), true, now).Return(nil, nil)
		mockItems.EXPECT().ListByCreator(ctx, int64(7), false, now).Return(nil, nil)
		mockLedger.EXPECT().ItemsBidOnBy(ctx, int64(7)).Return(nil, nil)

		profile, err := service.Profile(ctx, 7)
		require.NoError(t, err)
		require.Equal(t, "Ada", profile.FirstName)
		require.NotNil(t, profile.Selling)
		require.NotNil(t, profile.BiddingOn)
		require.NotNil(t, profile.AuctionsEnded)
		require.Empty(t, profile.Selling)
	})

	t.Run("sections_populated", func(t *testing.T) {
		selling := []models.ItemSummary{{ItemID: 1}}
		ended := []models.ItemSummary{{ItemID: 2}}
		bidding := []models.ItemSummary{{ItemID: 3}}

		mockUsers.EXPECT().GetUserByID(ctx, int64(7)).
			Return(&models.User{UserID: 7, FirstName: "Ada", LastName: "Lovelace"}, nil)
		mockItems.EXPECT().ListByCreator(ctx, int64(7), true, now).Return(selling, nil)
		mockItems.EXPECT().ListByCreator(ctx, int64(7), false, now).Return(ended, nil)
		mockLedger.EXPECT().ItemsBidOnBy(ctx, int64(7)).Return(bidding, nil)

		profile, err := service.Profile(ctx, 7)
		require.NoError(t, err)
		require.Equal(t, selling, profile.Selling)
		require.Equal(t, ended, profile.AuctionsEnded)
		require.Equal(t, bidding, profile.BiddingOn)
	})
}
