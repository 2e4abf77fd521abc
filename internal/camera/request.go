package camera

import (
	"math"
	"strings"
)

type ResultKind int

const (
	ResultInline ResultKind = iota
	ResultFile
)

func (k ResultKind) String() string {
	switch k {
	case ResultFile:
		return "uri"
	default:
		return "base64"
	}
}

// ParseResultKind maps the wire resultType onto a ResultKind. Anything other
// than "uri" is inline data.
func ParseResultKind(s string) ResultKind {
	if strings.EqualFold(strings.TrimSpace(s), "uri") {
		return ResultFile
	}
	return ResultInline
}

// CaptureRequest is fixed once a session starts; the session copies it.
type CaptureRequest struct {
	Quality            int
	AllowEditing       bool
	ResultKind         ResultKind
	TargetWidth        int
	TargetHeight       int
	CorrectOrientation bool
}

func DefaultRequest() CaptureRequest {
	return CaptureRequest{Quality: 100, ResultKind: ResultInline}
}

func (r CaptureRequest) ShouldResize() bool {
	return r.TargetWidth > 0 || r.TargetHeight > 0
}

func (r CaptureRequest) normalize() CaptureRequest {
	if r.Quality < 0 {
		r.Quality = 0
	}
	if r.Quality > 100 {
		r.Quality = 100
	}
	if r.TargetWidth < 0 {
		r.TargetWidth = 0
	}
	if r.TargetHeight < 0 {
		r.TargetHeight = 0
	}
	return r
}

// ParseRequest reads the invocation options. Numbers may arrive as any Go
// numeric type since callers usually decode them from JSON.
func ParseRequest(opts map[string]any) CaptureRequest {
	req := DefaultRequest()
	req.Quality = intOption(opts, "quality", req.Quality)
	req.AllowEditing = boolOption(opts, "allowEditing", false)
	req.ResultKind = ParseResultKind(stringOption(opts, "resultType", "base64"))
	req.TargetWidth = intOption(opts, "width", 0)
	req.TargetHeight = intOption(opts, "height", 0)
	req.CorrectOrientation = boolOption(opts, "correctOrientation", false)
	return req.normalize()
}

func intOption(opts map[string]any, key string, def int) int {
	switch v := opts[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float32:
		return floatOption(float64(v), def)
	case float64:
		return floatOption(v, def)
	default:
		return def
	}
}

// floatOption converts a bridged number, saturating at the int32 range.
func floatOption(v float64, def int) int {
	switch {
	case math.IsNaN(v):
		return def
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int(v)
}

func boolOption(opts map[string]any, key string, def bool) bool {
	if v, ok := opts[key].(bool); ok {
		return v
	}
	return def
}

func stringOption(opts map[string]any, key string, def string) string {
	if v, ok := opts[key].(string); ok {
		return v
	}
	return def
}
