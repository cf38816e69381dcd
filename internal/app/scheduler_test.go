package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/five82/afkscreen/internal/clock"
	"github.com/five82/afkscreen/internal/state"
)

var epoch = time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC)

type fakeFetcher struct {
	mu      sync.Mutex
	calls   int
	fail    bool
	started chan int      // receives the call number when non-nil
	release chan struct{} // blocks each call until closed or sent to, when non-nil
}

func (f *fakeFetcher) Fetch(ctx context.Context) state.StatusRecord {
	f.mu.Lock()
	f.calls++
	n := f.calls
	fail := f.fail
	f.mu.Unlock()

	if f.started != nil {
		f.started <- n
	}
	if f.release != nil {
		<-f.release
	}
	if fail {
		return state.StatusRecord{Err: "timeout"}
	}
	return state.StatusRecord{Live: true, ViewerCount: n, Title: "stream"}
}

func (f *fakeFetcher) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type recordingPublisher struct {
	recs chan state.StatusRecord
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{recs: make(chan state.StatusRecord, 32)}
}

func (p *recordingPublisher) Publish(rec state.StatusRecord) {
	p.recs <- rec
}

func (p *recordingPublisher) next(t *testing.T) state.StatusRecord {
	t.Helper()
	select {
	case rec := <-p.recs:
		return rec
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a publication")
		return state.StatusRecord{}
	}
}

func (p *recordingPublisher) expectNone(t *testing.T) {
	t.Helper()
	select {
	case rec := <-p.recs:
		t.Fatalf("unexpected publication %+v", rec)
	case <-time.After(50 * time.Millisecond):
	}
}

func newTestScheduler(fetcher *fakeFetcher) (*Scheduler, *recordingPublisher, *clock.FakeClock) {
	clk := clock.Fake(epoch)
	pub := newRecordingPublisher()
	s := NewScheduler(fetcher, pub, SchedulerOptions{Interval: 5 * time.Second, Clock: clk})
	return s, pub, clk
}

func TestScheduler_FetchesImmediatelyThenEveryInterval(t *testing.T) {
	fetcher := &fakeFetcher{}
	s, pub, clk := newTestScheduler(fetcher)
	s.Start(context.Background())
	t.Cleanup(s.Stop)

	if rec := pub.next(t); rec.ViewerCount != 1 {
		t.Fatalf("first publication = %+v, want call 1", rec)
	}

	for want := 2; want <= 3; want++ {
		clk.Advance(4 * time.Second)
		pub.expectNone(t)
		clk.Advance(time.Second)

		rec := pub.next(t)
		if rec.ViewerCount != want {
			t.Fatalf("publication = %+v, want call %d", rec, want)
		}
		// The fake fetcher leaves FetchedAt unset; the scheduler stamps it.
		if !rec.FetchedAt.Equal(clk.Now()) {
			t.Fatalf("FetchedAt = %v, want %v", rec.FetchedAt, clk.Now())
		}
	}
}

func TestScheduler_ManualRefreshKeepsCadence(t *testing.T) {
	fetcher := &fakeFetcher{}
	s, pub, clk := newTestScheduler(fetcher)
	s.Start(context.Background())
	t.Cleanup(s.Stop)

	pub.next(t)

	clk.Advance(2 * time.Second)
	s.TriggerManualRefresh()
	if rec := pub.next(t); rec.ViewerCount != 2 {
		t.Fatalf("manual publication = %+v, want call 2", rec)
	}

	// The next scheduled tick is still 5s after start, not 5s after the
	// manual refresh.
	clk.Advance(2 * time.Second)
	pub.expectNone(t)
	clk.Advance(time.Second)
	if rec := pub.next(t); rec.ViewerCount != 3 {
		t.Fatalf("scheduled publication = %+v, want call 3", rec)
	}
}

func TestScheduler_FailuresDoNotStopTheLoop(t *testing.T) {
	fetcher := &fakeFetcher{fail: true}
	s, pub, clk := newTestScheduler(fetcher)
	s.Start(context.Background())
	t.Cleanup(s.Stop)

	for i := 0; i < 3; i++ {
		rec := pub.next(t)
		if rec.Err != "timeout" || rec.Live {
			t.Fatalf("publication = %+v, want failed record", rec)
		}
		clk.Advance(5 * time.Second)
	}
	if !s.isRunning() {
		t.Fatalf("scheduler stopped after failures")
	}
}

func TestScheduler_StopLetsInFlightFetchFinishOnce(t *testing.T) {
	fetcher := &fakeFetcher{
		started: make(chan int, 4),
		release: make(chan struct{}),
	}
	s, pub, clk := newTestScheduler(fetcher)
	s.Start(context.Background())

	select {
	case <-fetcher.started:
	case <-time.After(2 * time.Second):
		t.Fatal("first fetch never started")
	}

	s.Stop()
	if s.isRunning() {
		t.Fatalf("isRunning() = true after Stop")
	}

	clk.Advance(10 * time.Second)
	s.TriggerManualRefresh()
	close(fetcher.release)

	if rec := pub.next(t); rec.ViewerCount != 1 {
		t.Fatalf("in-flight publication = %+v, want call 1", rec)
	}
	s.Wait()

	select {
	case <-s.Done():
	default:
		t.Fatal("Done not closed after Wait")
	}
	pub.expectNone(t)
	if got := fetcher.Calls(); got != 1 {
		t.Fatalf("fetch calls = %d, want 1", got)
	}
	if got := clk.Active(); got != 0 {
		t.Fatalf("active tickers = %d, want 0 after loop exit", got)
	}
}

func TestScheduler_StopIsIdempotent(t *testing.T) {
	fetcher := &fakeFetcher{}
	s, pub, _ := newTestScheduler(fetcher)
	s.Start(context.Background())
	pub.next(t)

	s.Stop()
	s.Stop()
	s.Wait()
}

func TestScheduler_StopBeforeStart(t *testing.T) {
	fetcher := &fakeFetcher{}
	s, pub, _ := newTestScheduler(fetcher)

	s.Stop()
	s.Start(context.Background())
	s.TriggerManualRefresh()
	s.Wait()

	pub.expectNone(t)
	if got := fetcher.Calls(); got != 0 {
		t.Fatalf("fetch calls = %d, want 0", got)
	}
}

func TestScheduler_ManualRefreshBeforeStartIsIgnored(t *testing.T) {
	fetcher := &fakeFetcher{}
	s, pub, _ := newTestScheduler(fetcher)

	s.TriggerManualRefresh()
	pub.expectNone(t)
	if got := fetcher.Calls(); got != 0 {
		t.Fatalf("fetch calls = %d, want 0", got)
	}
}

func TestScheduler_ContextCancelStopsLoop(t *testing.T) {
	fetcher := &fakeFetcher{}
	s, pub, _ := newTestScheduler(fetcher)

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	pub.next(t)

	cancel()
	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not exit after context cancel")
	}
	if s.isRunning() {
		t.Fatalf("isRunning() = true after context cancel")
	}
}

func TestScheduler_ConcurrentManualRefreshes(t *testing.T) {
	fetcher := &fakeFetcher{}
	s, pub, _ := newTestScheduler(fetcher)
	s.Start(context.Background())
	pub.next(t)

	for i := 0; i < 5; i++ {
		s.TriggerManualRefresh()
	}
	seen := make(map[int]bool)
	for i := 0; i < 5; i++ {
		seen[pub.next(t).ViewerCount] = true
	}
	s.Stop()
	s.Wait()

	if len(seen) != 5 {
		t.Fatalf("distinct publications = %d, want 5", len(seen))
	}
}
