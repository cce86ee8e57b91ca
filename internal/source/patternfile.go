package source

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// patternFile is the on-disk shape of a user pattern table:
//
//	frames:
//	  - peaks: [0, 2, 5, 9, 12, 15, 12, 9, 5, 2, 0, 2, 5, 9, 12, 15]
//	  - peaks: [1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1]
type patternFile struct {
	Frames []patternRow `yaml:"frames"`
}

type patternRow struct {
	Peaks []int `yaml:"peaks"`
}

// LoadPatterns reads a YAML pattern table for the demo provider. The
// frame count must be a power of two (same masked-wrap constraint as
// the builtin table) and every row must carry sixteen 4-bit values.
func LoadPatterns(path string) ([]Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read patterns: %w", err)
	}

	var pf patternFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse patterns: %w", err)
	}

	n := len(pf.Frames)
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("patterns: frame count %d is not a power of two", n)
	}

	rows := make([]Row, n)
	for i, fr := range pf.Frames {
		if len(fr.Peaks) != NumBands {
			return nil, fmt.Errorf("patterns: frame %d has %d peaks, want %d", i, len(fr.Peaks), NumBands)
		}
		for j, v := range fr.Peaks {
			if v < 0 || v > 0x0f {
				return nil, fmt.Errorf("patterns: frame %d peak %d value %d outside 0..15", i, j, v)
			}
			rows[i].Peaks[j] = byte(v)
		}
	}
	return rows, nil
}
