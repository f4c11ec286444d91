//go:build windows

package logscan_test

func runtimeIsUnixLike() bool { return false }
