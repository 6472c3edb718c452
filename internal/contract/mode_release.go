//go:build !intrusive_debug

package contract

const defaultMode = ModeOff
