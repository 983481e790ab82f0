// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package cmd implements the command line interface.
package cmd

import (
	"os"
	"path"

	"github.com/spf13/cobra"
)

// RootCommand is the base CLI command that all subcommands are added to.
var RootCommand = &cobra.Command{
	Use:   path.Base(os.Args[0]),
	Short: "dotNetRDF query engine",
	Long:  "An RDF triple store and SPARQL algebra evaluation engine.",
}
