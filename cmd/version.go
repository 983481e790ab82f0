// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Geovanny27/dotnetrdf/version"
)

func init() {
	versionCommand := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Long:  "Show version and build information.",
		Run: func(cmd *cobra.Command, args []string) {
			generateVersionOutput(os.Stdout)
		},
	}
	RootCommand.AddCommand(versionCommand)
}

func generateVersionOutput(out io.Writer) {
	fmt.Fprintln(out, "Version: "+version.Version)
	fmt.Fprintln(out, "Go Version: "+version.GoVersion)
	fmt.Fprintln(out, "Platform: "+version.Platform)
	if version.Vcs != "" {
		fmt.Fprintln(out, "Build Commit: "+version.Vcs)
	}
	if version.Timestamp != "" {
		fmt.Fprintln(out, "Build Timestamp: "+version.Timestamp)
	}
}
