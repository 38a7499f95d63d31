package errors

import (
	"math"
	"strings"
	"unicode"
)

// Limits enforced on mindmap documents.
const (
	// MaxTextLength bounds the text of a single node.
	MaxTextLength = 4096

	// MaxDimension bounds any style dimension (pixels).
	MaxDimension = 100_000.0
)

// ValidateDimension checks that a style dimension is a finite number in
// [0, MaxDimension]. name is used in the error message.
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidStyle, "%s must be a finite number", name)
	}
	if v < 0 {
		return New(ErrCodeInvalidStyle, "%s cannot be negative (got %g)", name, v)
	}
	if v > MaxDimension {
		return New(ErrCodeInvalidStyle, "%s too large (max %g, got %g)", name, MaxDimension, v)
	}
	return nil
}

// ValidateWidthRange checks that a minimum/maximum width pair is ordered.
// A zero maximum means unbounded.
func ValidateWidthRange(minWidth, maxWidth float64) error {
	if maxWidth > 0 && maxWidth < minWidth {
		return New(ErrCodeInvalidStyle, "max_width %g is below min_width %g", maxWidth, minWidth)
	}
	return nil
}

// ValidateTreeShape checks a tree's depth and node count against limits.
// Non-positive limits disable the corresponding check.
//
// Layout recursion depth equals tree depth, so the depth limit also bounds
// stack usage.
func ValidateTreeShape(depth, count, maxDepth, maxNodes int) error {
	if maxDepth > 0 && depth > maxDepth {
		return New(ErrCodeTreeTooDeep, "mindmap is %d levels deep (max %d)", depth, maxDepth)
	}
	if maxNodes > 0 && count > maxNodes {
		return New(ErrCodeTreeTooLarge, "mindmap has %d nodes (max %d)", count, maxNodes)
	}
	return nil
}

// ValidateText validates node text. Newlines and tabs are allowed; other
// control characters and null bytes are not.
func ValidateText(text string) error {
	if len(text) > MaxTextLength {
		return New(ErrCodeInvalidDocument, "node text too long (max %d bytes)", MaxTextLength)
	}
	for _, r := range text {
		if r == '\n' || r == '\t' {
			continue
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidDocument, "node text contains invalid control characters")
		}
	}
	return nil
}

// ValidateURL validates an image URL. Empty URLs are allowed (the image is
// then a pure placeholder); otherwise the scheme must be http, https or data.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return nil
	}
	for _, scheme := range []string{"http://", "https://", "data:"} {
		if strings.HasPrefix(rawURL, scheme) {
			return nil
		}
	}
	return New(ErrCodeInvalidInput, "image URL must use http, https or data scheme")
}
