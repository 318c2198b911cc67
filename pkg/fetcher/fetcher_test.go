package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const installPage = `<html>
<head><title>  HIP Installation Guide </title></head>
<body>
<h1>Installation<a class="headerlink" href="#install">#</a></h1>
<p>Install the ROCm stack first.</p>
<h2>Prerequisites</h2>
<ul><li>Supported GPU</li><li>Linux kernel 5.15</li></ul>
<h2>Verify your installation</h2>
<p>Run hipconfig and call hipGetDeviceCount.</p>
<pre><code>hipMalloc(&amp;ptr, size); hipMalloc(&amp;other, size); cudaMemcpy(a, b, n, kind);</code></pre>
</body>
</html>`

func TestFetch_ExtractsStructure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, installPage)
	}))
	defer server.Close()

	f := NewFetcher(time.Second, nil)
	doc := f.Fetch(context.Background(), server.URL+"/rocm/install.html")

	assert.Equal(t, "HIP Installation Guide", doc.Title)
	assert.Equal(t, []string{"Installation#", "Prerequisites", "Verify your installation"}, doc.SectionHeaders)
	assert.Equal(t, "ROCm Documentation", doc.DocumentCategory)
	assert.Equal(t, []string{"hipconfig", "hipGetDeviceCount", "hipMalloc", "cudaMemcpy"}, doc.APIList)

	require.Contains(t, doc.SectionContents, "Prerequisites")
	assert.Equal(t, "Supported GPU\nLinux kernel 5.15", doc.SectionContents["Prerequisites"])
	assert.Equal(t, "Install the ROCm stack first.", doc.SectionContents["Installation#"])
	assert.Contains(t, doc.RawText, "Install the ROCm stack first.")
}

func TestFetch_FailuresYieldEmptyDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	f := NewFetcher(time.Second, nil)

	t.Run("non 2xx status", func(t *testing.T) {
		doc := f.Fetch(context.Background(), server.URL)
		assert.True(t, doc.IsEmpty())
	})

	t.Run("transport error", func(t *testing.T) {
		doc := f.Fetch(context.Background(), "http://127.0.0.1:1/unreachable")
		assert.True(t, doc.IsEmpty())
	})

	t.Run("malformed url", func(t *testing.T) {
		doc := f.Fetch(context.Background(), "://bad")
		assert.True(t, doc.IsEmpty())
	})
}

func TestFetch_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		fmt.Fprint(w, installPage)
	}))
	defer server.Close()

	f := NewFetcher(20*time.Millisecond, nil)
	doc := f.Fetch(context.Background(), server.URL)
	assert.True(t, doc.IsEmpty())
}

func TestExtractAPINames_DedupAndCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&b, "hipFunc%d hipFunc%d ", i, i)
	}
	names := ExtractAPINames(b.String())
	assert.Len(t, names, maxAPINames)
	assert.Equal(t, "hipFunc0", names[0])
	assert.Equal(t, "hipFunc19", names[19])
}

func TestGuessCategory(t *testing.T) {
	tests := []struct {
		url      string
		sections []string
		want     string
	}{
		{"https://rocm.docs.amd.com/projects/HIP/en/latest", nil, "HIP Documentation"},
		{"https://rocm.docs.amd.com/en/latest", nil, "ROCm Documentation"},
		{"https://example.com/docs", []string{"Runtime API"}, "API Reference"},
		{"https://example.com/blog", []string{"Intro"}, "Technical Document"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, GuessCategory(tt.url, tt.sections))
		})
	}
}
