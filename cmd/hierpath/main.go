// SPDX-License-Identifier: MIT

// Command hierpath converts trees between adjacency-list & materialized-path forms.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
