package guides

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"medguides/internal/models"
	"medguides/internal/storage"
)

// Compile-time check that the fake satisfies the object-store contract.
var _ storage.ObjectStore = (*fakeObjectStore)(nil)

// fakeObjectStore is a func-field fake: tests override only the behavior
// they care about and inspect the recorded calls.
type fakeObjectStore struct {
	PutFunc     func(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	PresignFunc func(ctx context.Context, key string, expiry time.Duration) (string, error)
	RemoveFunc  func(ctx context.Context, key string) error

	PutCalls     int32
	PresignCalls int32
	RemoveCalls  int32

	LastPutKey    string
	LastRemoveKey string
}

func (f *fakeObjectStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	atomic.AddInt32(&f.PutCalls, 1)
	f.LastPutKey = key
	if f.PutFunc != nil {
		return f.PutFunc(ctx, key, r, size, contentType)
	}
	return nil
}

func (f *fakeObjectStore) Presign(ctx context.Context, key string, expiry time.Duration) (string, error) {
	n := atomic.AddInt32(&f.PresignCalls, 1)
	if f.PresignFunc != nil {
		return f.PresignFunc(ctx, key, expiry)
	}
	// A fresh capability URL per issuance, like the real store.
	return fmt.Sprintf("https://objstore.local/%s?sig=%d", key, n), nil
}

func (f *fakeObjectStore) Remove(ctx context.Context, key string) error {
	atomic.AddInt32(&f.RemoveCalls, 1)
	f.LastRemoveKey = key
	if f.RemoveFunc != nil {
		return f.RemoveFunc(ctx, key)
	}
	return nil
}

func (f *fakeObjectStore) Exists(ctx context.Context, key string) (bool, error) {
	return key == f.LastPutKey, nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Profile{}, &models.Category{}, &models.MedicalGuide{},
		&models.AccessLog{}, &models.Session{},
	))
	return db
}

func newTestService(t *testing.T) (*Service, *gorm.DB, *fakeObjectStore) {
	t.Helper()
	db := newTestDB(t)
	store := &fakeObjectStore{}
	return NewService(db, store, zap.NewNop().Sugar()), db, store
}

func mustCreateProfile(t *testing.T, db *gorm.DB, email string, role models.Role) models.Profile {
	t.Helper()
	name := "Dr. " + email
	p := models.Profile{Email: email, PasswordHash: "x", FullName: &name, Role: role}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func mustCreateGuide(t *testing.T, db *gorm.DB, title, createdBy string, published bool, createdAt time.Time) models.MedicalGuide {
	t.Helper()
	g := models.MedicalGuide{
		Title:       title,
		FileURL:     createdBy + "/" + title + ".pdf",
		CreatedBy:   createdBy,
		IsPublished: published,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	require.NoError(t, db.Create(&g).Error)
	return g
}
