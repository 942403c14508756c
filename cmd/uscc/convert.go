package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/usc"
	"github.com/gogpu/usc/asset"
	"github.com/gogpu/usc/usil"
)

type convertOptions struct {
	requestFlags
	MetadataType int
	ParamsPath   string
}

func newConvertCommand(root *rootOptions) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <payload>",
		Short: "Convert a payload and print its USIL listing",
		Long: `Convert one shader payload to USIL and print the listing.

DirectX payloads carry their program type; other backends need --type.
With --metadata-type the sub-program metadata is applied and the default
optimizer runs, binding operands to the parameters read from --params.
Use "-" to read the payload from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(root, opts, args[0], cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	opts.register(cmd)
	cmd.Flags().IntVar(&opts.MetadataType, "metadata-type", -1, "serialized sub-program type; applies metadata when set")
	cmd.Flags().StringVar(&opts.ParamsPath, "params", "", "YAML parameter metadata for --metadata-type")

	return cmd
}

func runConvert(root *rootOptions, opts *convertOptions, path string, stdin io.Reader, out, errOut io.Writer) error {
	req, err := opts.request(root.config)
	if err != nil {
		return err
	}
	if opts.MetadataType >= 0 {
		params, err := loadParams(opts.ParamsPath)
		if err != nil {
			return err
		}
		req.Metadata = &usc.Metadata{
			SubProgram: asset.SubProgram{RawProgramType: opts.MetadataType},
			Params:     params,
		}
	}

	r, err := openPayload(path, stdin)
	if err != nil {
		return err
	}
	defer r.Close()

	p, err := usc.Convert(r, req, root.opts)
	if err != nil {
		return err
	}
	for _, verr := range usil.Validate(p) {
		fmt.Fprintf(errOut, "warning: %v\n", verr)
	}
	return usil.Print(out, p)
}

func loadParams(path string) (asset.Params, error) {
	var params asset.Params
	if path == "" {
		return params, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return params, fmt.Errorf("read params: %w", err)
	}
	if err := yaml.Unmarshal(data, &params); err != nil {
		return params, fmt.Errorf("parse params yaml: %w", err)
	}
	return params, nil
}

func openPayload(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open payload: %w", err)
	}
	return f, nil
}
