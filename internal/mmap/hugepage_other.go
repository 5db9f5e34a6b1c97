//go:build unix && !linux

package mmap

const madvHugePage = -1
