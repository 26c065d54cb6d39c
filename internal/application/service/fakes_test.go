package service

import (
	"context"
	"time"

	"github.com/dealflowhq/dealflow-api/internal/domain/entity"
	"github.com/dealflowhq/dealflow-api/internal/domain/enum"
	"github.com/dealflowhq/dealflow-api/pkg/pagination"
	"github.com/dealflowhq/dealflow-api/pkg/revenuecat"
	"github.com/dealflowhq/dealflow-api/pkg/scanner"
	"github.com/google/uuid"
)

// --- Fakes shared across the service tests ---

type fakeUserRepo struct {
	users     map[uuid.UUID]*entity.User
	getErr    error
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) UpdateSubscription(_ context.Context, id uuid.UUID, tier enum.SubscriptionTier, expires *time.Time) error {
	u, ok := f.users[id]
	if !ok {
		return nil
	}
	u.SubscriptionTier = tier
	u.SubscriptionExpires = expires
	return nil
}

type fakePasswordResetRepo struct {
	tokens map[string]*entity.PasswordResetToken
}

func newFakePasswordResetRepo() *fakePasswordResetRepo {
	return &fakePasswordResetRepo{tokens: make(map[string]*entity.PasswordResetToken)}
}

func (f *fakePasswordResetRepo) Create(_ context.Context, token *entity.PasswordResetToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	f.tokens[token.Token] = token
	return nil
}

func (f *fakePasswordResetRepo) GetByToken(_ context.Context, token string) (*entity.PasswordResetToken, error) {
	return f.tokens[token], nil
}

func (f *fakePasswordResetRepo) MarkAsUsed(_ context.Context, token string) error {
	if t, ok := f.tokens[token]; ok {
		t.Used = true
	}
	return nil
}

func (f *fakePasswordResetRepo) DeleteByEmail(_ context.Context, email string) error {
	for k, t := range f.tokens {
		if t.Email == email {
			delete(f.tokens, k)
		}
	}
	return nil
}

func (f *fakePasswordResetRepo) DeleteExpired(_ context.Context) error {
	for k, t := range f.tokens {
		if time.Now().After(t.ExpiresAt) {
			delete(f.tokens, k)
		}
	}
	return nil
}

type fakeSettingsRepo struct {
	settings  map[uuid.UUID]*entity.UserSettings
	createErr error
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: make(map[uuid.UUID]*entity.UserSettings)}
}

func (f *fakeSettingsRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	return f.settings[userID], nil
}

func (f *fakeSettingsRepo) Create(_ context.Context, s *entity.UserSettings) error {
	if f.createErr != nil {
		return f.createErr
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.settings[s.UserID] = s
	return nil
}

func (f *fakeSettingsRepo) Update(_ context.Context, s *entity.UserSettings) error {
	f.settings[s.UserID] = s
	return nil
}

type fakeTradeRepo struct {
	trades    map[uuid.UUID]*entity.Trade
	createErr error
}

func newFakeTradeRepo() *fakeTradeRepo {
	return &fakeTradeRepo{trades: make(map[uuid.UUID]*entity.Trade)}
}

func (f *fakeTradeRepo) Create(_ context.Context, trade *entity.Trade) error {
	if f.createErr != nil {
		return f.createErr
	}
	if trade.ID == uuid.Nil {
		trade.ID = uuid.New()
	}
	f.trades[trade.ID] = trade
	return nil
}

func (f *fakeTradeRepo) GetByID(_ context.Context, userID, id uuid.UUID) (*entity.Trade, error) {
	t, ok := f.trades[id]
	if !ok || t.UserID != userID {
		return nil, nil
	}
	return t, nil
}

func (f *fakeTradeRepo) List(_ context.Context, userID uuid.UUID, folderID *uuid.UUID, _ *pagination.PaginationParams) ([]entity.Trade, int64, error) {
	var out []entity.Trade
	for _, t := range f.trades {
		if t.UserID != userID {
			continue
		}
		if folderID != nil && (t.FolderID == nil || *t.FolderID != *folderID) {
			continue
		}
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (f *fakeTradeRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	t, ok := f.trades[id]
	if ok && t.UserID == userID {
		delete(f.trades, id)
	}
	return nil
}

func (f *fakeTradeRepo) UpdateFolder(_ context.Context, userID, id uuid.UUID, folderID *uuid.UUID) error {
	t, ok := f.trades[id]
	if ok && t.UserID == userID {
		t.FolderID = folderID
	}
	return nil
}

func (f *fakeTradeRepo) CountByFolder(_ context.Context, userID, folderID uuid.UUID) (int64, error) {
	var n int64
	for _, t := range f.trades {
		if t.UserID == userID && t.FolderID != nil && *t.FolderID == folderID {
			n++
		}
	}
	return n, nil
}

type fakeFolderRepo struct {
	folders map[uuid.UUID]*entity.Folder
	trades  *fakeTradeRepo
}

func newFakeFolderRepo(trades *fakeTradeRepo) *fakeFolderRepo {
	return &fakeFolderRepo{folders: make(map[uuid.UUID]*entity.Folder), trades: trades}
}

func (f *fakeFolderRepo) Create(_ context.Context, folder *entity.Folder) error {
	if folder.ID == uuid.Nil {
		folder.ID = uuid.New()
	}
	f.folders[folder.ID] = folder
	return nil
}

func (f *fakeFolderRepo) GetByID(_ context.Context, userID, id uuid.UUID) (*entity.Folder, error) {
	fo, ok := f.folders[id]
	if !ok || fo.UserID != userID {
		return nil, nil
	}
	return fo, nil
}

func (f *fakeFolderRepo) List(_ context.Context, userID uuid.UUID) ([]entity.Folder, error) {
	var out []entity.Folder
	for _, fo := range f.folders {
		if fo.UserID == userID {
			out = append(out, *fo)
		}
	}
	return out, nil
}

func (f *fakeFolderRepo) Update(_ context.Context, folder *entity.Folder) error {
	f.folders[folder.ID] = folder
	return nil
}

func (f *fakeFolderRepo) DeleteAndReassign(_ context.Context, userID, id uuid.UUID) error {
	if f.trades != nil {
		for _, t := range f.trades.trades {
			if t.UserID == userID && t.FolderID != nil && *t.FolderID == id {
				t.FolderID = nil
			}
		}
	}
	delete(f.folders, id)
	return nil
}

type fakeScanUsageRepo struct {
	counts       map[string]int
	countErr     error
	incrementErr error
}

func newFakeScanUsageRepo() *fakeScanUsageRepo {
	return &fakeScanUsageRepo{counts: make(map[string]int)}
}

func (f *fakeScanUsageRepo) key(userID uuid.UUID, day string) string {
	return userID.String() + "/" + day
}

func (f *fakeScanUsageRepo) CountForDay(_ context.Context, userID uuid.UUID, day string) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.counts[f.key(userID, day)], nil
}

func (f *fakeScanUsageRepo) Increment(_ context.Context, userID uuid.UUID, day string) error {
	if f.incrementErr != nil {
		return f.incrementErr
	}
	f.counts[f.key(userID, day)]++
	return nil
}

type fakeCoinFlipRepo struct {
	flips []*entity.CoinFlip
}

func (f *fakeCoinFlipRepo) Create(_ context.Context, flip *entity.CoinFlip) error {
	if flip.ID == uuid.Nil {
		flip.ID = uuid.New()
	}
	f.flips = append(f.flips, flip)
	return nil
}

func (f *fakeCoinFlipRepo) ListRecent(_ context.Context, userID uuid.UUID, limit int) ([]entity.CoinFlip, error) {
	var out []entity.CoinFlip
	for _, fl := range f.flips {
		if fl.UserID == userID {
			out = append(out, *fl)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakePlatform struct {
	subscriber *revenuecat.SubscriberInfo
	err        error
	configured bool
}

func (f *fakePlatform) GetSubscriber(_ context.Context, _ string) (*revenuecat.SubscriberInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.subscriber == nil {
		return &revenuecat.SubscriberInfo{Entitlements: map[string]revenuecat.Entitlement{}}, nil
	}
	return f.subscriber, nil
}

func (f *fakePlatform) IsConfigured() bool {
	return f.configured
}

type fakeRecognizer struct {
	card  *scanner.CardData
	err   error
	calls int
}

func (f *fakeRecognizer) Recognize(_ context.Context, _ string) (*scanner.CardData, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.card, nil
}

func (f *fakeRecognizer) IsConfigured() bool {
	return true
}
