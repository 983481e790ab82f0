// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package version contains version information that is set at build time.
package version

import (
	"runtime"
)

// Version is the canonical version of the library.
var Version = "0.1.0-dev"

// GoVersion is the version of Go this was built with.
var GoVersion = runtime.Version()

// Platform is the runtime OS and architecture of this binary.
var Platform = runtime.GOOS + "/" + runtime.GOARCH

// Additional version information displayed by the "version" command.
var (
	Vcs       = ""
	Timestamp = ""
)
