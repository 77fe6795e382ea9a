package uid

import "github.com/google/uuid"

// GenerateGameID returns a random identifier used to tag one game in the logs.
func GenerateGameID() string {
	return uuid.NewString()
}
