package master

import (
	"testing"

	"amdlingo-be/pkg/ai/mode"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		req    RouteRequest
		want   mode.Mode
		wantOK bool
	}{
		{"url field", RouteRequest{Text: "explain this", URL: "https://rocm.docs.amd.com"}, mode.Document, true},
		{"url in text", RouteRequest{Text: "read https://example.com/hip-install please"}, mode.Document, true},
		{"url uppercase scheme", RouteRequest{Text: "HTTPS://EXAMPLE.COM/guide"}, mode.Document, true},
		{"url beats code", RouteRequest{Text: "__global__ void k() see http://x.io/a"}, mode.Document, true},
		{"global kernel", RouteRequest{Text: "__global__ void add(int* a){ }"}, mode.Code, true},
		{"thread index", RouteRequest{Text: "int i = threadIdx.x;"}, mode.Code, true},
		{"code keyword is case sensitive", RouteRequest{Text: "THREADIDX usage question"}, "", false},
		{"code beats error", RouteRequest{Text: "__device__ illegal access"}, mode.Code, true},
		{"hip error", RouteRequest{Text: "hipErrorIllegalAddress at line 10"}, mode.Error, true},
		{"segfault", RouteRequest{Text: "Segmentation fault (core dumped)"}, mode.Error, true},
		{"stack trace", RouteRequest{Text: "here is the Stack Trace"}, mode.Error, true},
		{"error beats hipify", RouteRequest{Text: "cudaMalloc returned illegal value"}, mode.Error, true},
		{"cuda malloc", RouteRequest{Text: "cudaMalloc(&ptr, size);"}, mode.Hipify, true},
		{"launch syntax", RouteRequest{Text: "kernel<<<grid, block>>>(x);"}, mode.Hipify, true},
		{"single token", RouteRequest{Text: "  hipMemcpy  "}, mode.API, true},
		{"token too short", RouteRequest{Text: "h"}, "", false},
		{"token with punctuation", RouteRequest{Text: "hipMemcpy()"}, "", false},
		{"token too long", RouteRequest{Text: "hipAVeryLongFunctionNameThatGoesOnAndOn"}, "", false},
		{"prose", RouteRequest{Text: "how do I install rocm"}, "", false},
		{"empty", RouteRequest{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Detect(tt.req)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
