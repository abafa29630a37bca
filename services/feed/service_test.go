package feed

import (
	"context"
	"errors"
	"testing"

	"workmate/models"

	"go.uber.org/zap"
)

type fakeLister struct {
	jobs  []models.Job
	err   error
	calls int
}

func (f *fakeLister) ListJobs(ctx context.Context) ([]models.Job, error) {
	f.calls++
	return f.jobs, f.err
}

type fakeCache struct {
	jobs    []models.Job
	getErr  error
	setErr  error
	sets    int
	deletes int
}

func (f *fakeCache) SetJobs(ctx context.Context, jobs []models.Job) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.jobs = jobs
	return nil
}

func (f *fakeCache) GetJobs(ctx context.Context) ([]models.Job, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.jobs, nil
}

func (f *fakeCache) Invalidate(ctx context.Context) error {
	f.deletes++
	f.jobs = nil
	return nil
}

var sampleJobs = []models.Job{{ID: "1", Title: "Tutoring", Status: "available"}}

func TestService_OpenJobs(t *testing.T) {
	tests := []struct {
		name         string
		cache        *fakeCache
		api          *fakeLister
		wantAPICalls int
		wantWarm     bool
		wantErr      bool
	}{
		{
			name:         "cache hit skips the backend",
			cache:        &fakeCache{jobs: sampleJobs},
			api:          &fakeLister{jobs: nil},
			wantAPICalls: 0,
		},
		{
			name:         "cache miss fetches and warms",
			cache:        &fakeCache{},
			api:          &fakeLister{jobs: sampleJobs},
			wantAPICalls: 1,
			wantWarm:     true,
		},
		{
			name:         "cache read error falls through to the backend",
			cache:        &fakeCache{getErr: errors.New("redis down")},
			api:          &fakeLister{jobs: sampleJobs},
			wantAPICalls: 1,
			wantWarm:     true,
		},
		{
			name:         "backend failure surfaces",
			cache:        &fakeCache{},
			api:          &fakeLister{err: errors.New("unreachable")},
			wantAPICalls: 1,
			wantErr:      true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc := NewService(test.api, test.cache, zap.NewNop())

			jobs, err := svc.OpenJobs(context.Background())

			if (err != nil) != test.wantErr {
				t.Fatalf("OpenJobs() error = %v, wantErr %v", err, test.wantErr)
			}
			if test.api.calls != test.wantAPICalls {
				t.Errorf("API calls = %d, want %d", test.api.calls, test.wantAPICalls)
			}
			if !test.wantErr && len(jobs) != len(sampleJobs) {
				t.Errorf("got %d jobs, want %d", len(jobs), len(sampleJobs))
			}
			if test.wantWarm && test.cache.sets == 0 {
				t.Error("cache was not warmed after fetch")
			}
		})
	}
}

func TestService_OpenJobsWithoutCache(t *testing.T) {
	api := &fakeLister{jobs: sampleJobs}
	svc := NewService(api, nil, zap.NewNop())

	jobs, err := svc.OpenJobs(context.Background())
	if err != nil {
		t.Fatalf("OpenJobs() error = %v", err)
	}
	if len(jobs) != 1 || api.calls != 1 {
		t.Errorf("jobs = %v, calls = %d", jobs, api.calls)
	}
}

func TestService_Refresh(t *testing.T) {
	cache := &fakeCache{}
	api := &fakeLister{jobs: sampleJobs}
	svc := NewService(api, cache, zap.NewNop())

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if cache.sets != 1 || len(cache.jobs) != 1 {
		t.Errorf("cache not rewritten: sets = %d, jobs = %v", cache.sets, cache.jobs)
	}

	api.err = errors.New("unreachable")
	if err := svc.Refresh(context.Background()); err == nil {
		t.Fatal("Refresh() = nil error, want failure")
	}
}

func TestService_Invalidate(t *testing.T) {
	cache := &fakeCache{jobs: sampleJobs}
	svc := NewService(&fakeLister{}, cache, zap.NewNop())

	svc.Invalidate(context.Background())
	if cache.deletes != 1 || cache.jobs != nil {
		t.Errorf("cache not invalidated: deletes = %d", cache.deletes)
	}

	// No cache configured is a quiet no-op.
	NewService(&fakeLister{}, nil, zap.NewNop()).Invalidate(context.Background())
}
