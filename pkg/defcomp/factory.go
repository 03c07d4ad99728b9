package defcomp

import (
	"context"
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/defkit/pkg/vdom"
)

// Default tracer name for the element factory.
const defaultTracerName = "github.com/vango-dev/defkit/pkg/defcomp"

// FactoryConfig configures a Factory.
type FactoryConfig struct {
	// Store caches adapted classes. Default: a new MapStore.
	Store Store

	// Logger receives adaptation and rejection events.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Registry registers the factory metrics. Nil disables metrics.
	Registry prometheus.Registerer

	// Namespace is the metrics namespace (default: "defkit").
	Namespace string

	// TracerName resolves a tracer from the global provider when Tracer is nil.
	TracerName string

	// Tracer traces adaptations.
	Tracer trace.Tracer
}

// Option configures a Factory.
type Option func(*FactoryConfig)

// WithStore sets the definition cache.
func WithStore(store Store) Option {
	return func(c *FactoryConfig) {
		c.Store = store
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *FactoryConfig) {
		c.Logger = logger
	}
}

// WithMetrics registers Prometheus metrics with registry.
func WithMetrics(registry prometheus.Registerer) Option {
	return func(c *FactoryConfig) {
		c.Registry = registry
	}
}

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *FactoryConfig) {
		c.Namespace = namespace
	}
}

// WithTracerName sets the tracer name used with the global provider.
func WithTracerName(name string) Option {
	return func(c *FactoryConfig) {
		c.TracerName = name
	}
}

// WithTracer sets the tracer directly.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *FactoryConfig) {
		c.Tracer = tracer
	}
}

func defaultFactoryConfig() FactoryConfig {
	return FactoryConfig{
		Namespace:  "defkit",
		TracerName: defaultTracerName,
	}
}

// Factory creates elements from definitions, adapting each definition
// pointer at most once.
type Factory struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics
	tracer  trace.Tracer
}

// NewFactory creates a Factory.
func NewFactory(opts ...Option) *Factory {
	config := defaultFactoryConfig()
	for _, opt := range opts {
		opt(&config)
	}

	f := &Factory{
		store:  config.Store,
		logger: config.Logger,
		tracer: config.Tracer,
	}
	if f.store == nil {
		f.store = NewMapStore()
	}
	if f.logger == nil {
		f.logger = slog.Default()
	}
	if f.tracer == nil {
		f.tracer = otel.Tracer(config.TracerName)
	}
	if config.Registry != nil {
		f.metrics = newMetrics(config.Registry, config.Namespace)
	}
	return f
}

// Store returns the factory's definition cache.
func (f *Factory) Store() Store {
	return f.store
}

// CreateElement creates an element. See CreateElementContext.
func (f *Factory) CreateElement(def any, args ...any) (*vdom.VNode, error) {
	return f.CreateElementContext(context.Background(), def, args...)
}

// CreateElementContext creates an element from a tag name, a host component
// value or a *Definition. Definitions are resolved through the cache and
// adapted on first use; ctx carries the adaptation span. args and any
// error from vdom.CreateElement pass through unchanged.
func (f *Factory) CreateElementContext(ctx context.Context, def any, args ...any) (*vdom.VNode, error) {
	if def == nil {
		return nil, f.reject(missingDefinition())
	}
	if _, tag := def.(string); tag || vdom.IsElementType(def) {
		return vdom.CreateElement(def, args...)
	}

	class, err := f.Resolve(ctx, def)
	if err != nil {
		return nil, err
	}
	return vdom.CreateElement(class, args...)
}

// Resolve returns the cached class for a *Definition, adapting it on a miss.
func (f *Factory) Resolve(ctx context.Context, def any) (*Class, error) {
	d, ok := def.(*Definition)
	if !ok || d == nil {
		return nil, f.reject(notCacheable(def))
	}

	class, loaded, err := f.store.LoadOrStore(d, func() (*Class, error) {
		return f.adapt(ctx, d)
	})
	if err != nil {
		return nil, f.reject(err)
	}

	f.metrics.recordLookup(loaded, f.store.Len())
	if !loaded {
		f.logger.Debug("adapted component definition",
			"component", class.DisplayName(),
			"methods", len(class.methods),
		)
	}
	return class, nil
}

func (f *Factory) adapt(ctx context.Context, def *Definition) (*Class, error) {
	_, span := f.tracer.Start(ctx, "defcomp.adapt")
	defer span.End()

	class, err := Adapt(def)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(
		attribute.String("defcomp.component", class.DisplayName()),
		attribute.Int("defcomp.methods", len(class.methods)),
	)
	return class, nil
}

// notCacheable explains why def cannot be resolved by identity.
func notCacheable(def any) error {
	switch def.(type) {
	case Definition:
		return invalid(CodeNotCacheable, "",
			"definitions must be passed by pointer so they can be cached; use &Definition{...}")
	case RenderFunc:
		return invalid(CodeNotCacheable, KeyGetElement,
			"render functions cannot be cached by identity; adapt them with Adapt first")
	}
	// Anything else is not a definition at all; let Adapt describe it.
	_, err := Adapt(def)
	return err
}

func (f *Factory) reject(err error) error {
	var ide *InvalidDefinitionError
	if errors.As(err, &ide) {
		f.metrics.recordInvalid(ide.Code)
		f.logger.Warn("invalid component definition",
			"code", ide.Code,
			"property", ide.Property,
			"error", err,
		)
	}
	return err
}

var defaultFactory = NewFactory()

// Default returns the process-wide factory used by CreateElement.
func Default() *Factory {
	return defaultFactory
}

// CreateElement creates an element with the default factory.
func CreateElement(def any, args ...any) (*vdom.VNode, error) {
	return defaultFactory.CreateElement(def, args...)
}
