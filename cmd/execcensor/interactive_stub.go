//go:build !linux

package main

import (
	"fmt"

	"github.com/sandboxtools/execcensor/internal/dispatch"
)

func runInteractive(_ dispatch.RecordedCall) error {
	return fmt.Errorf("interactive replay is only supported on Linux")
}
