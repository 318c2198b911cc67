package master

import (
	"context"
	"sync"
	"testing"

	"amdlingo-be/pkg/fetcher"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// stubFetcher records requested URLs and serves a canned document.
type stubFetcher struct {
	mu   sync.Mutex
	doc  fetcher.Document
	urls []string
}

func (s *stubFetcher) Fetch(_ context.Context, url string) fetcher.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.urls = append(s.urls, url)
	return s.doc
}

func (s *stubFetcher) requested() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.urls...)
}
