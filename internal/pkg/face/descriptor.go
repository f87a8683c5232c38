package face

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// DefaultMatchThreshold is the calibration point of the upstream embedding
// model (face-api.js recognition net). Overridable via configuration.
const DefaultMatchThreshold = 0.6

// ErrLengthMismatch is returned when two descriptors of different
// dimensionality are compared. Comparing them element-wise would be
// meaningless, so this fails loudly instead of truncating.
var ErrLengthMismatch = errors.New("face descriptors have different lengths")

// Descriptor is the fixed-length numeric embedding produced by the face
// recognition model (128 components for the default model).
type Descriptor []float64

// Distance returns the Euclidean distance between two descriptors.
func Distance(a, b Descriptor) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}

	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return math.Sqrt(sum), nil
}

// Matches reports whether the captured descriptor matches the stored one.
// The boundary is strict: a distance exactly equal to the threshold is not
// a match.
func Matches(captured, stored Descriptor, threshold float64) (bool, error) {
	dist, err := Distance(captured, stored)
	if err != nil {
		return false, err
	}
	return dist < threshold, nil
}

// Encode serializes a descriptor for storage as a JSON number array.
// Decode(Encode(d)) restores d element-for-element.
func Encode(d Descriptor) (string, error) {
	raw, err := json.Marshal([]float64(d))
	if err != nil {
		return "", fmt.Errorf("failed to encode face descriptor: %w", err)
	}
	return string(raw), nil
}

// Decode parses a descriptor previously produced by Encode.
func Decode(s string) (Descriptor, error) {
	var values []float64
	if err := json.Unmarshal([]byte(s), &values); err != nil {
		return nil, fmt.Errorf("failed to decode face descriptor: %w", err)
	}
	return Descriptor(values), nil
}
