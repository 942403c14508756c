// Command uscc converts engine shader payloads to USIL listings.
//
// Usage:
//
//	uscc convert [flags] <payload>
//	uscc disasm [flags] <payload>
//	uscc batch [flags] <dir>
//	uscc version
//
// Examples:
//
//	uscc convert --platform d3d11 --engine 2021.3.1f1 blob.bin
//	uscc convert --platform switch --type ConsoleFS blob.bin
//	uscc convert --platform gles3 --type GLESFragment --metadata-type 18 --params params.yaml shader.glsl
//	uscc disasm --platform vulkan shader.spv
//	uscc batch -v --config usc.yaml blobs/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
