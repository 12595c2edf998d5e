package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Hao186188/parttime-job-frontend/internal/models"
	"github.com/Hao186188/parttime-job-frontend/internal/session"
)

// identityFunc adapts a function to the session.Identity interface.
type identityFunc func(ctx context.Context) (*models.User, error)

func (f identityFunc) Me(ctx context.Context) (*models.User, error) { return f(ctx) }

func student() *models.User {
	return &models.User{ID: "u1", Name: "Minh", Email: "minh@example.com", UserType: models.RoleStudent}
}

// ── SetSession / Clear ─────────────────────────────────────────────────────

func TestSetSession_SetsAuthAndRole(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(session.NewMemoryStorage())

	if err := store.SetSession(ctx, "tok-123", student()); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	if !store.IsAuthenticated() {
		t.Error("IsAuthenticated should be true after SetSession")
	}
	if store.Token() != "tok-123" {
		t.Errorf("Token = %q, want %q", store.Token(), "tok-123")
	}
	if !store.HasRole(models.RoleStudent) {
		t.Error("HasRole(student) should be true")
	}
	if store.HasRole(models.RoleEmployer) {
		t.Error("HasRole(employer) should be false")
	}
	if !store.IsStudent() || store.IsEmployer() {
		t.Error("role shorthands disagree with HasRole")
	}
}

func TestClear_DropsEverything(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(session.NewMemoryStorage())

	if err := store.SetSession(ctx, "tok-123", student()); err != nil {
		t.Fatalf("SetSession: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if store.IsAuthenticated() {
		t.Error("IsAuthenticated should be false after Clear")
	}
	if store.HasRole(models.RoleStudent) || store.HasRole(models.RoleEmployer) {
		t.Error("all role queries should be false after Clear")
	}
	if store.CurrentUser() != nil {
		t.Error("CurrentUser should be nil after Clear")
	}
}

func TestHasRole_NoUserCached(t *testing.T) {
	store := session.NewStore(session.NewMemoryStorage())
	if store.HasRole(models.RoleStudent) {
		t.Error("HasRole should be false with no cached user")
	}
}

// ── Load ───────────────────────────────────────────────────────────────────

func TestLoad_RestoresPersistedSession(t *testing.T) {
	ctx := context.Background()
	storage := session.NewMemoryStorage()

	first := session.NewStore(storage)
	if err := first.SetSession(ctx, "tok-abc", student()); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	// A second store over the same storage models a process restart.
	second := session.NewStore(storage)
	if err := second.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if second.Token() != "tok-abc" {
		t.Errorf("Token after Load = %q, want %q", second.Token(), "tok-abc")
	}
	user := second.CurrentUser()
	if user == nil || user.Name != "Minh" {
		t.Errorf("CurrentUser after Load = %+v", user)
	}
}

func TestLoad_EmptyStorageStaysAnonymous(t *testing.T) {
	store := session.NewStore(session.NewMemoryStorage())
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load on empty storage: %v", err)
	}
	if store.IsAuthenticated() {
		t.Error("empty storage should leave the session anonymous")
	}
}

// ── Reconcile ──────────────────────────────────────────────────────────────

func TestReconcile_SuccessRefreshesUserKeepsToken(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(session.NewMemoryStorage())
	if err := store.SetSession(ctx, "tok-1", student()); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	refreshed := &models.User{ID: "u1", Name: "Minh Updated", UserType: models.RoleStudent}
	err := store.Reconcile(ctx, identityFunc(func(context.Context) (*models.User, error) {
		return refreshed, nil
	}))
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}

	if store.Token() != "tok-1" {
		t.Errorf("token changed on successful reconcile: %q", store.Token())
	}
	if got := store.CurrentUser(); got == nil || got.Name != "Minh Updated" {
		t.Errorf("user not refreshed: %+v", got)
	}
}

func TestReconcile_FailureClearsSession(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(session.NewMemoryStorage())
	if err := store.SetSession(ctx, "tok-expired", student()); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	err := store.Reconcile(ctx, identityFunc(func(context.Context) (*models.User, error) {
		return nil, errors.New("401 token expired")
	}))
	if err == nil {
		t.Fatal("Reconcile should propagate the failure")
	}

	if store.IsAuthenticated() {
		t.Error("session should be cleared after failed reconcile")
	}
	if store.CurrentUser() != nil {
		t.Error("cached user should be gone after failed reconcile")
	}
}

func TestReconcile_AnonymousIsNoop(t *testing.T) {
	store := session.NewStore(session.NewMemoryStorage())
	called := false
	err := store.Reconcile(context.Background(), identityFunc(func(context.Context) (*models.User, error) {
		called = true
		return nil, nil
	}))
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if called {
		t.Error("anonymous reconcile should not hit the network")
	}
}

// Concurrent reconciles collapse onto one in-flight request.
func TestReconcile_ConcurrentCallsCollapsed(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(session.NewMemoryStorage())
	if err := store.SetSession(ctx, "tok-1", student()); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	var (
		mu      sync.Mutex
		calls   int
		release = make(chan struct{})
	)
	identity := identityFunc(func(context.Context) (*models.User, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		<-release
		return student(), nil
	})

	var wg, started sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		started.Add(1)
		go func() {
			defer wg.Done()
			started.Done()
			_ = store.Reconcile(ctx, identity)
		}()
	}
	started.Wait()
	time.Sleep(50 * time.Millisecond) // let all callers join the in-flight request
	close(release)
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Errorf("expected concurrent reconciles to collapse onto one request, got %d identity calls", calls)
	}
	if !store.IsAuthenticated() {
		t.Error("session should remain authenticated")
	}
}
