package worker

import (
	"fmt"
	"strings"

	"amdlingo-be/pkg/ai/payload"
)

const mockNotes = "Generated by the offline worker."

func codeResult(p payload.Code, sessionID string) CodeResult {
	issues := []CodeIssue{}
	fixed := p.NormalizedCode
	explanation := "No obvious problems found by the static review."

	if strings.Contains(p.NormalizedCode, "threadIdx") && !strings.Contains(p.NormalizedCode, "if (") {
		issues = append(issues, CodeIssue{
			Type:        "boundary_error",
			Description: "thread index is used without an i < N guard",
			Location:    firstLineContaining(p.NormalizedCode, "threadIdx"),
			Severity:    "high",
		})
		explanation = "Guard the global index with a bounds check before touching memory."
	}

	kernels := "no kernels"
	if len(p.KernelBlocks) > 0 {
		kernels = "kernels " + strings.Join(p.KernelBlocks, ", ")
	}

	return CodeResult{
		Summary:        fmt.Sprintf("%s snippet with %s.", strings.ToUpper(p.Language), kernels),
		Issues:         issues,
		FixExplanation: explanation,
		FixedCode:      fixed,
		OptimizationSuggestions: []string{
			"Consider shared memory for data reused within a block.",
			"Check occupancy with rocprof before tuning block size.",
		},
		APIReference:   nonNil(p.APIList),
		ContextSyncKey: sessionID,
	}
}

var rootCauses = map[string]string{
	"hipErrorIllegalAddress":       "A kernel or copy touched memory outside a valid allocation.",
	"hipErrorInvalidValue":         "An argument passed to the runtime is out of range.",
	"hipErrorOutOfMemory":          "The device allocation exceeded available memory.",
	"hipErrorInvalidDevice":        "The selected device ordinal does not exist.",
	"hipErrorLaunchFailure":        "The kernel faulted while running.",
	"hipErrorNotInitialized":       "The runtime was used before initialization.",
	"hipErrorInvalidDevicePointer": "A host pointer was passed where a device pointer is required.",
}

func errorResult(p payload.Error, sessionID string) ErrorResult {
	cause, ok := rootCauses[p.ErrorType]
	if !ok {
		cause = "The error message does not identify a specific HIP error code."
	}

	evidence := append([]string{}, p.StackTrace...)
	if len(evidence) == 0 {
		evidence = append(evidence, firstLine(p.ErrorMessage))
	}

	return ErrorResult{
		ErrorSummary: fmt.Sprintf("%s reported around %s", p.ErrorType, p.LikelyAPI),
		RootCause:    cause,
		Evidence:     evidence,
		FixSteps: []string{
			"Check the return value of every HIP call with hipGetErrorString.",
			"Confirm pointer sizes and copy directions for " + p.LikelyAPI + ".",
			"Add bounds checks to kernels indexing with threadIdx.",
		},
		FixedCode:      "",
		RiskAnalysis:   []string{"Leaving the fault unfixed can corrupt device memory or hang the GPU."},
		RelatedAPIDocs: []string{p.LikelyAPI},
		ContextSyncKey: sessionID,
	}
}

func hipifyResult(p payload.Hipify, sessionID string) HipifyResult {
	diff := make([]DiffEntry, 0, len(p.MappingReport))
	for _, m := range p.MappingReport {
		diff = append(diff, DiffEntry{Type: "api_mapping", From: m.From, To: m.To})
	}

	notes := make([]UnconvertedNote, 0, len(p.UnconvertedSegments))
	for _, segment := range p.UnconvertedSegments {
		notes = append(notes, UnconvertedNote{
			Segment:    segment,
			Status:     "manual_port_required",
			Suggestion: "Rewrite the launch with hipLaunchKernelGGL.",
		})
	}

	return HipifyResult{
		HipCodeFinal:     p.HipifiedCodeStatic,
		HipCodeStatic:    p.HipifiedCodeStatic,
		DiffSummary:      diff,
		UnconvertedNotes: notes,
		PortingRisks:     []string{"Confirm that every CUDA library used has a ROCm equivalent."},
		Explanation:      fmt.Sprintf("Replaced cuda prefixes with hip; %d known API mappings applied.", len(diff)),
		ContextSyncKey:   sessionID,
	}
}

type apiDoc struct {
	description string
	parameters  []string
	example     string
	related     []string
}

var apiDocs = map[string]apiDoc{
	"hipMalloc": {
		description: "Allocates memory on the current device.",
		parameters:  []string{"void** ptr", "size_t size"},
		example:     "float* d; hipMalloc(&d, n * sizeof(float));",
		related:     []string{"hipFree", "hipMallocManaged"},
	},
	"hipMemcpy": {
		description: "Copies memory between host and device.",
		parameters:  []string{"void* dst", "const void* src", "size_t sizeBytes", "hipMemcpyKind kind"},
		example:     "hipMemcpy(dst, src, size, hipMemcpyDeviceToHost);",
		related:     []string{"hipMemcpyAsync"},
	},
	"hipFree": {
		description: "Releases device memory allocated with hipMalloc.",
		parameters:  []string{"void* ptr"},
		example:     "hipFree(d);",
		related:     []string{"hipMalloc"},
	},
	"hipDeviceSynchronize": {
		description: "Blocks until all work on the current device has finished.",
		parameters:  []string{},
		example:     "hipDeviceSynchronize();",
		related:     []string{"hipStreamSynchronize"},
	},
	"hipGetDeviceCount": {
		description: "Returns the number of visible HIP devices.",
		parameters:  []string{"int* count"},
		example:     "int n; hipGetDeviceCount(&n);",
		related:     []string{"hipSetDevice", "hipGetDeviceProperties"},
	},
}

func apiResult(p payload.API, sessionID string) APIResult {
	name := p.APIName
	if name == "" {
		name = "hipMemcpy"
	}

	doc, known := apiDocs[name]
	if !known {
		doc = apiDoc{
			description: "No offline reference for " + name + "; see the HIP API documentation.",
			parameters:  p.Metadata.Parameters,
			related:     []string{},
		}
	}

	return APIResult{
		APIName:        name,
		Description:    doc.description,
		Parameters:     nonNil(doc.parameters),
		Return:         "hipError_t",
		Usage:          "Check the returned hipError_t before using any output.",
		ExampleCode:    doc.example,
		Pitfalls:       []string{"Ignoring the returned error code hides earlier failures."},
		RelatedAPIs:    nonNil(doc.related),
		Notes:          mockNotes,
		ContextSyncKey: sessionID,
	}
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	return strings.TrimSpace(line)
}

func firstLineContaining(text, needle string) string {
	for i, line := range strings.Split(text, "\n") {
		if strings.Contains(line, needle) {
			return fmt.Sprintf("line %d", i+1)
		}
	}
	return ""
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
