package commands

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/postlane-io/postman-client/internal/constants"
	"github.com/postlane-io/postman-client/pkg/postman"
	"github.com/postlane-io/postman-client/pkg/postmanclient"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// zerologLogger adapts a zerolog.Logger to the client's Logger interface.
type zerologLogger struct {
	logger zerolog.Logger
}

func newCLILogger(verbose bool) *zerologLogger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	return &zerologLogger{logger: logger}
}

func (z *zerologLogger) Debug(msg string, fields map[string]interface{}) {
	z.logger.Debug().Fields(fields).Msg(msg)
}

func (z *zerologLogger) Info(msg string, fields map[string]interface{}) {
	z.logger.Info().Fields(fields).Msg(msg)
}

func (z *zerologLogger) Warn(msg string, fields map[string]interface{}) {
	z.logger.Warn().Fields(fields).Msg(msg)
}

func (z *zerologLogger) Error(msg string, fields map[string]interface{}) {
	z.logger.Error().Fields(fields).Msg(msg)
}

// createClient builds an API client from viper configuration (flags, config
// file, environment).
func createClient() (postman.Client, error) {
	apiKey := viper.GetString("api_key")
	if apiKey == "" {
		return nil, constants.ErrNoAPIKeyConfigured
	}

	verbose := viper.GetBool("verbose")

	config := &postman.Config{
		APIKey:      apiKey,
		WorkspaceID: viper.GetString("workspace"),
		BaseURL:     viper.GetString("base_url"),
		Debug:       verbose,
		Logger:      newCLILogger(verbose),
	}

	return postmanclient.New(context.Background(), config)
}

// renderStructured writes data as JSON or YAML to stdout. It returns false
// when the format is the table default, leaving rendering to the caller.
func renderStructured(output string, data interface{}) (bool, error) {
	switch output {
	case constants.FormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		return true, encoder.Encode(data)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)
		defer func() { _ = encoder.Close() }()

		return true, encoder.Encode(data)
	default:
		return false, nil
	}
}

// formatTime renders a timestamp for table output, N/A when zero.
func formatTime(value time.Time) string {
	if value.IsZero() {
		return constants.NotAvailable
	}

	return value.Format("2006-01-02 15:04")
}

// truncate shortens a string for table cells.
func truncate(value string) string {
	if len(value) <= constants.StringTruncationLength {
		return value
	}

	return value[:constants.StringTruncationLength-3] + "..."
}

// displayValue masks secret-typed environment variable values.
func displayValue(value postman.EnvironmentValue) string {
	if value.Type == postman.VariableTypeSecret {
		return constants.MaskedSecret
	}

	return value.Value
}

// yesNo renders a boolean for table output.
func yesNo(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}
