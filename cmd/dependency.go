package cmd

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"ticket-scan/model"
	"ticket-scan/outbound/api"
	"ticket-scan/outbound/store"
)

func newCfg(name string) *viper.Viper {
	config := viper.New()

	config.SetConfigName(name)
	config.SetConfigType("yaml")
	config.AddConfigPath(".")

	err := config.ReadInConfig()
	if err != nil {
		log.Fatalln(err)
	}

	err = os.Setenv("TZ", config.GetString("server.timezone"))
	if err != nil {
		log.Fatalln(err)
	}

	return config
}

func newStore(cfg *viper.Viper) *store.Store {
	st, err := store.NewStore(cfg.GetString("store.dir"))
	if err != nil {
		log.Fatalln(err)
	}

	return st
}

func newEvent(cfg *viper.Viper) model.Event {
	event := model.Event{
		Slug: cfg.GetString("event.slug"),
		Name: cfg.GetString("event.name"),
	}
	if event.Slug == "" {
		log.Fatalln("event.slug must be configured")
	}

	return event
}

func newFetcher(cfg *viper.Viper, validate *validator.Validate) *api.Client {
	if !cfg.GetBool("api.validate_records") {
		validate = nil
	}

	return &api.Client{
		HTTP:      &http.Client{Timeout: cfg.GetDuration("api.timeout")},
		BaseURL:   cfg.GetString("api.base_url"),
		Organizer: cfg.GetString("api.organizer"),
		Token:     cfg.GetString("api.token"),
		Validate:  validate,
	}
}

// newTracerProvider installs the global tracer provider when an OTLP
// endpoint is configured, returning its shutdown function.
func newTracerProvider(ctx context.Context, cfg *viper.Viper) func() {
	endpoint := cfg.GetString("otel.endpoint")
	if endpoint == "" {
		return func() {}
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		log.Fatalln(err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName("ticket-scan"),
		)),
	)
	otel.SetTracerProvider(provider)

	return func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			log.Println("failed to shutdown tracer provider:", err)
		}
	}
}
