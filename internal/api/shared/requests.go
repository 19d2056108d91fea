package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/phrazzld/boardgame-api/internal/domain"
)

// MaxBodyBytes bounds the size of a resource submission.
const MaxBodyBytes = 1 << 20

// ErrInvalidBody is returned when a request body is not a single JSON object.
var ErrInvalidBody = errors.New("invalid request body")

// DecodeSubmission reads the request body as a JSON object. An empty body or
// a literal null decodes to an empty submission so that presence checks can
// report every required field as missing.
func DecodeSubmission(w http.ResponseWriter, r *http.Request) (domain.Submission, error) {
	if r.Body == nil {
		return domain.Submission{}, nil
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))

	var sub domain.Submission
	if err := dec.Decode(&sub); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Submission{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	if dec.More() {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidBody)
	}

	if sub == nil {
		sub = domain.Submission{}
	}
	return sub, nil
}
