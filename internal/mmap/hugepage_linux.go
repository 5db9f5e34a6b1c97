//go:build linux

package mmap

import "golang.org/x/sys/unix"

const madvHugePage = unix.MADV_HUGEPAGE
