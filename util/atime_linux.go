//go:build linux

package util

import (
	"os"
	"syscall"
	"time"
)

func init() {
	accessTime = func(info os.FileInfo) time.Time {
		st, ok := info.Sys().(*syscall.Stat_t)
		if !ok {
			return time.Time{}
		}
		return time.Unix(int64(st.Atim.Sec), int64(st.Atim.Nsec))
	}
}
