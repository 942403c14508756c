package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/usc"
	"github.com/gogpu/usc/asset"
	"github.com/gogpu/usc/extract"
)

// rootOptions holds the global flags and what they resolve to.
type rootOptions struct {
	ConfigPath  string
	OpcodesPath string
	Verbose     bool

	config *usc.Config
	opts   usc.Options
}

// requestFlags are the payload description flags shared by commands.
type requestFlags struct {
	Backend  string
	Platform string
	Engine   string
	Type     string
}

func newRootCommand() *cobra.Command {
	root := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "uscc",
		Short: "USC - Ultra Shader Converter",
		Long:  "Convert DirectX, GLES, Vulkan, Metal and NVN shader payloads into USIL listings.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.resolve(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&root.ConfigPath, "config", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&root.OpcodesPath, "opcodes", "", "YAML opcode overlay file")
	cmd.PersistentFlags().BoolVarP(&root.Verbose, "verbose", "v", false, "log session events to stderr")

	cmd.AddCommand(newConvertCommand(root))
	cmd.AddCommand(newDisasmCommand(root))
	cmd.AddCommand(newBatchCommand(root))
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// resolve loads the configuration and opcode overlay into options.
func (r *rootOptions) resolve(cmd *cobra.Command) error {
	r.config = usc.DefaultConfig()
	if r.ConfigPath != "" {
		cfg, err := usc.LoadConfig(r.ConfigPath)
		if err != nil {
			return err
		}
		r.config = cfg
	}

	opts, err := r.config.Options()
	if err != nil {
		return err
	}
	if r.OpcodesPath != "" {
		overlay, err := usc.LoadOpcodeOverlay(r.OpcodesPath)
		if err != nil {
			return err
		}
		if opts.Tables, err = opts.Tables.Overlay(overlay); err != nil {
			return err
		}
	}

	if r.Verbose {
		level := slog.LevelDebug
		if r.ConfigPath != "" {
			level = r.config.LogLevel
		}
		opts.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	}
	r.opts = opts
	return nil
}

func (f *requestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Backend, "backend", "", "backend (directx, gles, vulkan, metal, nvn); default from platform")
	cmd.Flags().StringVar(&f.Platform, "platform", "", "engine platform, e.g. d3d11, switch, gles3")
	cmd.Flags().StringVar(&f.Engine, "engine", "", "engine version, e.g. 2021.3.1f1")
	cmd.Flags().StringVar(&f.Type, "type", "", "program type, e.g. ConsoleFS, GLESVertex")
}

// request resolves the flags, falling back to the configuration file.
func (f *requestFlags) request(cfg *usc.Config) (usc.Request, error) {
	req := usc.Request{Platform: cfg.Platform, Version: cfg.Engine}

	if f.Platform != "" {
		p, err := asset.ParsePlatform(f.Platform)
		if err != nil {
			return usc.Request{}, err
		}
		req.Platform = p
	}
	if f.Engine != "" {
		v, err := asset.ParseVersion(f.Engine)
		if err != nil {
			return usc.Request{}, err
		}
		req.Version = v
	}
	if f.Backend != "" {
		b, err := extract.ParseBackend(f.Backend)
		if err != nil {
			return usc.Request{}, err
		}
		req.Backend = &b
	}
	if f.Type != "" {
		pt, err := asset.ParseProgramType(f.Type)
		if err != nil {
			return usc.Request{}, err
		}
		req.ProgramType = pt
	}

	if req.Backend == nil && req.Platform == asset.PlatformUnknown {
		return usc.Request{}, fmt.Errorf("--platform or --backend is required")
	}
	return req, nil
}
