//go:build js && wasm

package main

import (
	"log/slog"
	"time"

	"ocean-fx/internal/config"
	"ocean-fx/internal/web"
)

func main() {
	host, err := web.Mount(config.Default(), "ocean", time.Now().UnixNano())
	if err != nil {
		slog.Error("mount failed", "error", err)
		return
	}
	<-host.Done()
}
