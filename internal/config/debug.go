package config

import "os"

func IsDebug() bool {
	return os.Getenv("LOOPSH_DEBUG") == "1"
}
