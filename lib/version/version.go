// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set via -ldflags at build time:
//
//	go build -ldflags "-X github.com/objdesc/objdesc/lib/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	// GitCommit is the short git SHA of the build.
	GitCommit = "unknown"

	// GitDirty indicates whether there were uncommitted changes.
	GitDirty = "false"

	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"

	// Version is the semantic version. This is set manually for releases.
	Version = "0.1.0-dev"
)

// Info is the build information printed by "objdesc version".
type Info struct {
	Version   string `json:"version"    yaml:"version"`
	Commit    string `json:"commit"     yaml:"commit"`
	Dirty     bool   `json:"dirty"      yaml:"dirty"`
	BuildTime string `json:"build_time" yaml:"build_time"`
	Go        string `json:"go"         yaml:"go"`
	Platform  string `json:"platform"   yaml:"platform"`
}

// Read returns the build information of the running binary.
func Read() Info {
	info := Info{
		Version:   Version,
		Commit:    GitCommit,
		Dirty:     GitDirty == "true",
		BuildTime: BuildTime,
		Go:        runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if info.Commit == "unknown" {
		if build, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range build.Settings {
				switch setting.Key {
				case "vcs.revision":
					info.Commit = setting.Value[:min(len(setting.Value), 7)]
				case "vcs.modified":
					info.Dirty = setting.Value == "true"
				}
			}
		}
	}
	return info
}

// String formats info the way --version prints it:
// "0.1.0-dev (abc1234-dirty, 2026-02-10T...)".
func (info Info) String() string {
	dirty := ""
	if info.Dirty {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", info.Version, info.Commit, dirty, info.BuildTime)
}

// Short returns just the version number.
func Short() string {
	return Version
}
