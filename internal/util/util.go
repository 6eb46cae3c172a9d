package util

import (
	"fmt"
	"math/rand"
	"time"
)

// NewID returns a prefixed identifier of the form
// "{prefix}_{epochMillis}_{random}". Uniqueness is probabilistic: two calls
// in the same millisecond with the same random draw collide. That is
// acceptable for a single-user mock and matches what the console expects;
// use UUIDs if this ever fronts real data.
func NewID(prefix string) string {
	return fmt.Sprintf("%s_%d_%d", prefix, time.Now().UnixMilli(), rand.Intn(100000))
}
