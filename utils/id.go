package utils

import (
	"math/rand"
	"strconv"
	"time"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewID returns a short unique id: the current millisecond timestamp in
// base36 plus a random suffix. Collision-safe enough for notification ids,
// which are never user-facing.
func NewID() string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + string(suffix)
}
