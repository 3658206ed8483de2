package cmd

import (
	"path/filepath"
	"testing"
)

func TestPathOverlap(t *testing.T) {
	sep := string(filepath.Separator)
	tests := []struct {
		name     string
		source   string
		target   string
		expected overlap
	}{
		{
			name:     "same directory",
			source:   "/data/photos",
			target:   "/data/photos",
			expected: overlapNone,
		},
		{
			name:     "same directory with trailing separator",
			source:   "/data/photos" + sep,
			target:   "/data/photos",
			expected: overlapNone,
		},
		{
			name:     "target inside source",
			source:   "/data/photos",
			target:   "/data/photos/dist",
			expected: overlapTargetInSource,
		},
		{
			name:     "target inside source with trailing separator",
			source:   "/data/photos" + sep,
			target:   "/data/photos/dist" + sep,
			expected: overlapTargetInSource,
		},
		{
			name:     "source inside target",
			source:   "/data/dist/txt",
			target:   "/data/dist",
			expected: overlapSourceInTarget,
		},
		{
			name:     "sibling sharing a prefix",
			source:   "/data/src",
			target:   "/data/src-out",
			expected: overlapNone,
		},
		{
			name:     "source sharing the target's prefix",
			source:   "/data/dist-old",
			target:   "/data/dist",
			expected: overlapNone,
		},
		{
			name:     "separate trees",
			source:   "/data/photos",
			target:   "/tmp/dist",
			expected: overlapNone,
		},
		{
			name:     "relative target inside source",
			source:   "src",
			target:   "src/dist",
			expected: overlapTargetInSource,
		},
		{
			name:     "relative unclean target inside source",
			source:   "./src",
			target:   "src/../src/dist",
			expected: overlapTargetInSource,
		},
		{
			name:     "relative source inside target",
			source:   "dist/txt",
			target:   "dist",
			expected: overlapSourceInTarget,
		},
		{
			name:     "relative sibling prefix",
			source:   "src",
			target:   "src-out",
			expected: overlapNone,
		},
		{
			name:     "relative default target",
			source:   ".",
			target:   "dist",
			expected: overlapTargetInSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pathOverlap(tt.source, tt.target)
			if result != tt.expected {
				t.Errorf("pathOverlap(%q, %q) = %v, expected %v", tt.source, tt.target, result, tt.expected)
			}
		})
	}
}
