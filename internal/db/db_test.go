package db

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thirdcoast.systems/filtergraph/pkg/ffmpeg"
	"thirdcoast.systems/filtergraph/pkg/utils/markdown"
)

// memStore is an in-memory PresetStore that counts lookups.
type memStore struct {
	mu    sync.Mutex
	items map[uuid.UUID]*FilterPreset
	gets  int
}

func newMemStore() *memStore {
	return &memStore{items: make(map[uuid.UUID]*FilterPreset)}
}

func (s *memStore) CreatePreset(_ context.Context, arg CreatePresetParams) (*FilterPreset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.items {
		if p.Name == arg.Name {
			return nil, ErrPresetExists
		}
	}
	id := uuid.New()
	p := &FilterPreset{
		ID:          pgUUID(id),
		Name:        arg.Name,
		Description: markdown.Markdown{Source: arg.Description},
		Spec:        arg.Spec,
		CreatedAt:   pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	s.items[id] = p
	return p, nil
}

func (s *memStore) GetPreset(_ context.Context, id uuid.UUID) (*FilterPreset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++
	p, ok := s.items[id]
	if !ok {
		return nil, ErrPresetNotFound
	}
	return p, nil
}

func (s *memStore) GetPresetByName(_ context.Context, name string) (*FilterPreset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.items {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, ErrPresetNotFound
}

func (s *memStore) ListPresets(context.Context) ([]*FilterPreset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*FilterPreset, 0, len(s.items))
	for _, p := range s.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memStore) UpdatePreset(_ context.Context, arg UpdatePresetParams) (*FilterPreset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[arg.ID]; !ok {
		return nil, ErrPresetNotFound
	}
	p := &FilterPreset{ID: pgUUID(arg.ID), Name: arg.Name, Description: markdown.Markdown{Source: arg.Description}, Spec: arg.Spec}
	s.items[arg.ID] = p
	return p, nil
}

func (s *memStore) DeletePreset(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return ErrPresetNotFound
	}
	delete(s.items, id)
	return nil
}

func TestPresetCache(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	cache := NewPresetCache(store)

	spec := ffmpeg.ExportSpec{Format: "mp4", Filters: []ffmpeg.FilterSpec{{Type: "grayscale"}}}
	created, err := cache.CreatePreset(ctx, CreatePresetParams{Name: "mono", Spec: spec})
	require.NoError(t, err)
	id := uuid.UUID(created.ID.Bytes)

	got, err := cache.GetPreset(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "mono", got.Name)
	assert.Equal(t, 0, store.gets, "created preset should be served from cache")

	updated, err := cache.UpdatePreset(ctx, UpdatePresetParams{ID: id, Name: "mono2", Spec: spec})
	require.NoError(t, err)
	assert.Equal(t, "mono2", updated.Name)

	got, err = cache.GetPreset(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "mono2", got.Name)

	cache.Reload()
	_, err = cache.GetPreset(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, store.gets)

	require.NoError(t, cache.DeletePreset(ctx, id))
	_, err = cache.GetPreset(ctx, id)
	require.ErrorIs(t, err, ErrPresetNotFound)
}

// gatedStore holds GetPreset calls until release is closed.
type gatedStore struct {
	*memStore
	entered chan struct{}
	release chan struct{}
}

func (s *gatedStore) GetPreset(ctx context.Context, id uuid.UUID) (*FilterPreset, error) {
	p, err := s.memStore.GetPreset(ctx, id)
	s.entered <- struct{}{}
	<-s.release
	return p, err
}

func TestPresetCache_ReadRacingWrite(t *testing.T) {
	spec := ffmpeg.ExportSpec{Filters: []ffmpeg.FilterSpec{{Type: "grayscale"}}}

	tests := []struct {
		name  string
		write func(ctx context.Context, c *PresetCache, id uuid.UUID) error
		check func(t *testing.T, p *FilterPreset, err error)
	}{
		{
			name: "delete",
			write: func(ctx context.Context, c *PresetCache, id uuid.UUID) error {
				return c.DeletePreset(ctx, id)
			},
			check: func(t *testing.T, _ *FilterPreset, err error) {
				assert.ErrorIs(t, err, ErrPresetNotFound)
			},
		},
		{
			name: "update",
			write: func(ctx context.Context, c *PresetCache, id uuid.UUID) error {
				_, err := c.UpdatePreset(ctx, UpdatePresetParams{ID: id, Name: "new", Spec: spec})
				return err
			},
			check: func(t *testing.T, p *FilterPreset, err error) {
				require.NoError(t, err)
				assert.Equal(t, "new", p.Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			mem := newMemStore()
			created, err := mem.CreatePreset(ctx, CreatePresetParams{Name: "old", Spec: spec})
			require.NoError(t, err)
			id := uuid.UUID(created.ID.Bytes)

			store := &gatedStore{memStore: mem, entered: make(chan struct{}, 2), release: make(chan struct{})}
			cache := NewPresetCache(store)

			done := make(chan error, 1)
			go func() {
				_, err := cache.GetPreset(ctx, id)
				done <- err
			}()

			<-store.entered
			require.NoError(t, tt.write(ctx, cache, id))
			close(store.release)
			require.NoError(t, <-done, "the in-flight read saw the row before the write")

			p, err := cache.GetPreset(ctx, id)
			tt.check(t, p, err)
		})
	}
}

func TestPresetCache_ListAndByName(t *testing.T) {
	ctx := context.Background()
	cache := NewPresetCache(newMemStore())

	for _, name := range []string{"b", "a"} {
		_, err := cache.CreatePreset(ctx, CreatePresetParams{Name: name})
		require.NoError(t, err)
	}
	_, err := cache.CreatePreset(ctx, CreatePresetParams{Name: "a"})
	require.ErrorIs(t, err, ErrPresetExists)

	list, err := cache.ListPresets(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].Name)

	p, err := cache.GetPresetByName(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "b", p.Name)
}

func TestMapErr(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	missing := &pgconn.PgError{Code: "42P01"}
	other := errors.New("boom")

	assert.ErrorIs(t, mapErr(fmt.Errorf("wrap: %w", unique)), ErrPresetExists)
	assert.ErrorIs(t, mapErr(missing), ErrSchemaMissing)
	assert.Equal(t, other, mapErr(other))
}

func TestHelpers(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(errors.New("nope")))
	assert.True(t, IsUndefinedColumnErr(&pgconn.PgError{Code: "42703"}))

	assert.Nil(t, NilTimePtr(pgtype.Timestamptz{}))
	now := time.Now()
	require.NotNil(t, NilTimePtr(pgtype.Timestamptz{Time: now, Valid: true}))

	id := uuid.New()
	assert.Equal(t, id.String(), UUIDString(pgUUID(id)))
	assert.Empty(t, UUIDString(pgtype.UUID{}))
}

func TestMigrationTarget(t *testing.T) {
	target, down, err := migrationTarget()
	require.NoError(t, err)
	assert.False(t, down)
	assert.Equal(t, int64(goose.MaxVersion), target)

	t.Setenv("GOOSE_UP_TO", "1")
	target, down, err = migrationTarget()
	require.NoError(t, err)
	assert.False(t, down)
	assert.Equal(t, int64(1), target)

	t.Setenv("GOOSE_DOWN_TO", "x")
	_, _, err = migrationTarget()
	require.Error(t, err)
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(embedMigrations, "sql/migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	body, err := fs.ReadFile(embedMigrations, "sql/migrations/"+entries[0].Name())
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "filter_presets"))
	assert.Contains(t, string(body), "-- +goose Down")
}
