package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/vango-dev/defkit/internal/config"
	"github.com/vango-dev/defkit/internal/errors"
	"github.com/vango-dev/defkit/internal/gallery"
	"github.com/vango-dev/defkit/pkg/defcomp"
	"github.com/vango-dev/defkit/pkg/render"
	"github.com/vango-dev/defkit/pkg/vdom"
)

type renderOptions struct {
	pretty  bool
	props   []string
	list    bool
	metrics bool
}

func renderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [component]",
		Short: "Render a sample component to HTML",
		Long: `Render one of the built-in sample components to HTML.

Props are passed as key=value pairs and arrive as strings.

Examples:
  defkit render --list
  defkit render greeting --prop name=Ada
  defkit render todos -p items=milk,eggs --pretty
  defkit render counter --metrics`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.configDir)
			if err != nil {
				return err
			}
			if root.logLevel != "" {
				cfg.Log.Level = root.logLevel
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("pretty") {
				cfg.Render.Pretty = opts.pretty
			}
			return runRender(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent the output (default from defkit.json)")
	cmd.Flags().StringArrayVarP(&opts.props, "prop", "p", nil, "Component prop as key=value (repeatable)")
	cmd.Flags().BoolVarP(&opts.list, "list", "l", false, "List available components")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "Print factory metrics after rendering")

	return cmd
}

func runRender(stdout, stderr io.Writer, cfg *config.Config, args []string, opts *renderOptions) error {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	registry := prometheus.NewRegistry()

	factory := defcomp.NewFactory(
		defcomp.WithLogger(logger),
		defcomp.WithMetrics(registry),
		defcomp.WithNamespace(cfg.Metrics.Namespace),
	)
	g, err := gallery.New(factory)
	if err != nil {
		return err
	}

	if opts.list {
		for _, name := range g.Names() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	if len(args) == 0 {
		return errors.New("X001").
			WithDetail("No component named").
			WithSuggestion("Available components: " + strings.Join(g.Names(), ", "))
	}
	name := args[0]
	if !slices.Contains(g.Names(), name) {
		return errors.New("X001").
			WithProperty(name).
			WithDetail(fmt.Sprintf("No component named %q", name)).
			WithSuggestion("Available components: " + strings.Join(g.Names(), ", "))
	}

	props, err := parseProps(opts.props)
	if err != nil {
		return err
	}

	node, err := g.Element(name, props)
	if err != nil {
		return errors.FromError(err, "X001")
	}

	renderer := render.NewRenderer(render.RendererConfig{
		Pretty: cfg.Render.Pretty,
		Indent: cfg.Render.Indent,
		Logger: logger,
	})
	if err := renderer.RenderToWriter(stdout, node); err != nil {
		return errors.New("R001").Wrap(err)
	}
	if !cfg.Render.Pretty {
		fmt.Fprintln(stdout)
	}
	logger.Info("rendered component", "component", name, "mounted", renderer.Mounted())

	if opts.metrics {
		return writeMetrics(stdout, registry)
	}
	return nil
}

// parseProps turns key=value pairs into props.
func parseProps(pairs []string) (vdom.Props, error) {
	props := vdom.Props{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, errors.New("C002").
				WithProperty("prop").
				WithDetail(fmt.Sprintf("Prop %q must have the form key=value", pair))
		}
		props[key] = value
	}
	return props, nil
}

func writeMetrics(w io.Writer, registry *prometheus.Registry) error {
	families, err := registry.Gather()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
