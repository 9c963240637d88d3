package constants

import (
	"os"
	"time"

	"github.com/jsphweid/fretdex/util"
)

func GetChordsDBPath() string {
	path := os.Getenv("CHORDS_DB_PATH")
	if path != "" {
		return path
	}
	return "./data/guitar.json"
}

func GetAddr() string {
	addr := os.Getenv("FRETDEX_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetAllowedOrigins() []string {
	origins := util.SplitList(os.Getenv("FRETDEX_ALLOWED_ORIGINS"))
	if len(origins) > 0 {
		return origins
	}
	return []string{"*"}
}

// editors tend to write a file in several steps
const ReloadDebounce = 250 * time.Millisecond

const ShutdownTimeout = 5 * time.Second
