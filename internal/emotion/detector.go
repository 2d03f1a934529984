package emotion

import (
	"context"

	"holistic/wellness-app/internal/domain"
)

// Detection is the emotion-service verdict for one piece of text.
type Detection struct {
	Emotion string       `json:"emotion"`
	Tips    []domain.Tip `json:"tips"`
}

// Detector defines the interface to the external emotion-detection service.
// The service itself (a separate ML process) is outside this repo; only its
// HTTP contract is consumed, and services depend on this interface so tests
// can inject a fake.
type Detector interface {
	Detect(ctx context.Context, input string) (*Detection, error)
}
