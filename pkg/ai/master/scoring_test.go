package master

import (
	"testing"

	"amdlingo-be/pkg/ai/mode"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		req  RouteRequest
		want map[mode.Mode]int
	}{
		{
			name: "empty",
			req:  RouteRequest{},
			want: map[mode.Mode]int{mode.Document: 0, mode.Code: 0, mode.Error: 0, mode.Hipify: 0, mode.API: 0},
		},
		{
			name: "url with hip",
			req:  RouteRequest{Text: "https://example.com/hip-install"},
			want: map[mode.Mode]int{mode.Document: 30, mode.Code: 0, mode.Error: 0, mode.Hipify: -10, mode.API: 40},
		},
		{
			name: "mixed cuda and hip",
			req:  RouteRequest{Text: "port cudaMalloc to hipMalloc"},
			want: map[mode.Mode]int{mode.Document: 10, mode.Code: 0, mode.Error: 0, mode.Hipify: 40, mode.API: 0},
		},
		{
			name: "error with line",
			req:  RouteRequest{Text: "hipErrorIllegalAddress at line 10"},
			want: map[mode.Mode]int{mode.Document: 10, mode.Code: 0, mode.Error: 50, mode.Hipify: -10, mode.API: 0},
		},
		{
			name: "multi line code",
			req: RouteRequest{Text: "int main() {\n  int a;\n\n  a = 1;\n  return a;\n}\n"},
			want: map[mode.Mode]int{mode.Document: 0, mode.Code: 45, mode.Error: 0, mode.Hipify: 0, mode.API: 0},
		},
		{
			name: "six lines mention hip",
			req:  RouteRequest{Text: "a\nb\nc\nd\ne\nhip"},
			want: map[mode.Mode]int{mode.Document: 15, mode.Code: 20, mode.Error: 0, mode.Hipify: -10, mode.API: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.req)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Score() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScore_IsDeterministic(t *testing.T) {
	req := RouteRequest{Text: "cudaMemcpy failed with illegal address\nstack:\n at main.cpp:12", URL: "https://rocm.docs.amd.com"}
	first := Score(req)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(req))
	}
}

func TestBest_TieBreakFollowsAllowedOrder(t *testing.T) {
	scores := map[mode.Mode]int{mode.Document: 0, mode.Code: 10, mode.Error: 10, mode.Hipify: 0, mode.API: 0}

	assert.Equal(t, mode.Code, Best(scores, []mode.Mode{mode.Code, mode.Error}))
	assert.Equal(t, mode.Error, Best(scores, []mode.Mode{mode.Error, mode.Code}))
	assert.Equal(t, mode.API, Best(scores, []mode.Mode{mode.API, mode.Document, mode.Hipify}))
}

func TestBest_NegativeScoresStillCompete(t *testing.T) {
	scores := map[mode.Mode]int{mode.Hipify: -10, mode.API: -20}
	assert.Equal(t, mode.Hipify, Best(scores, []mode.Mode{mode.API, mode.Hipify}))
}
