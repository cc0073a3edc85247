// Command springnative resolves native build tools versions and applies the
// Spring Native customization to build model snapshots.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
