package uid

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// GenerateSessionID identifies one run of the program, which may span
// several games when players ask for a rematch.
func GenerateSessionID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate session ID")
	}
	return id.String(), nil
}
