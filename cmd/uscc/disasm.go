package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/usc"
	"github.com/gogpu/usc/usil"
)

type disasmOptions struct {
	requestFlags
	Stage string
}

func newDisasmCommand(root *rootOptions) *cobra.Command {
	opts := &disasmOptions{}

	cmd := &cobra.Command{
		Use:   "disasm <payload>",
		Short: "Print the backend-native instructions of a payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDisasm(root, opts, args[0], cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVar(&opts.Stage, "stage", "fragment", "GLSL section to print (vertex|fragment)")

	return cmd
}

func runDisasm(root *rootOptions, opts *disasmOptions, path string, stdin io.Reader, out io.Writer) error {
	req, err := opts.request(root.config)
	if err != nil {
		return err
	}
	var stage usil.Stage
	switch opts.Stage {
	case "vertex":
		stage = usil.StageVertex
	case "fragment":
		stage = usil.StageFragment
	default:
		return fmt.Errorf("invalid stage %q: must be vertex or fragment", opts.Stage)
	}

	r, err := openPayload(path, stdin)
	if err != nil {
		return err
	}
	defer r.Close()
	return usc.Disassemble(out, r, req, stage, root.opts)
}
