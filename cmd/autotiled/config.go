package main

import "github.com/1broseidon/autotiled/internal/daemonconfig"

func loadDaemonConfig(path string) (*daemonconfig.LoadResult, error) {
	if path == "" {
		return daemonconfig.Load()
	}
	return daemonconfig.LoadFromPath(path)
}
