package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/identkit-io/dirsvc/pkg/dirclient"
	"github.com/identkit-io/dirsvc/pkg/dirsvc"
)

// zapLogger adapts a zap logger to dirsvc.Logger.
type zapLogger struct {
	logger *zap.SugaredLogger
}

func (l *zapLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debugw(msg, flatten(fields)...)
}

func (l *zapLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Infow(msg, flatten(fields)...)
}

func (l *zapLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warnw(msg, flatten(fields)...)
}

func (l *zapLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Errorw(msg, flatten(fields)...)
}

func flatten(fields map[string]interface{}) []interface{} {
	kv := make([]interface{}, 0, len(fields)*2)
	for key, value := range fields {
		kv = append(kv, key, value)
	}

	return kv
}

// newLogger builds the CLI logger; verbose switches to development output
// at debug level.
func newLogger() (dirsvc.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if viper.GetBool("verbose") {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}

	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	return &zapLogger{logger: logger.Sugar()}, nil
}

// CreateClient builds a directory client from the resolved configuration.
func CreateClient() (dirsvc.Client, error) {
	endpoint := viper.GetString("api")
	if endpoint == "" {
		return nil, dirsvc.ErrAPIEndpointRequired
	}

	apiKey := viper.GetString("api-key")
	if apiKey == "" {
		return nil, dirsvc.ErrAPIKeyRequired
	}

	logger, err := newLogger()
	if err != nil {
		return nil, err
	}

	return dirclient.New(&dirsvc.Config{
		APIEndpoint: endpoint,
		APIKey:      apiKey,
		Debug:       viper.GetBool("verbose"),
		Logger:      logger,
	})
}

// objectFields flattens one directory object for structured output.
func objectFields(obj dirsvc.DirectoryObject) map[string]string {
	fields := obj.Fields()
	fields["id"] = obj.Identity()

	return fields
}

// renderObjects prints directory objects in the configured output format.
// Table output shows the id plus the requested columns; json and yaml show
// every field each record carries.
func renderObjects(objects []dirsvc.DirectoryObject, columns []string) error {
	output := viper.GetString("output")

	switch output {
	case "json":
		rows := make([]map[string]string, 0, len(objects))
		for _, obj := range objects {
			rows = append(rows, objectFields(obj))
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(rows)
	case "yaml":
		rows := make([]map[string]string, 0, len(objects))
		for _, obj := range objects {
			rows = append(rows, objectFields(obj))
		}

		return yaml.NewEncoder(os.Stdout).Encode(rows)
	default:
		renderTable(objects, columns)

		return nil
	}
}

func renderTable(objects []dirsvc.DirectoryObject, columns []string) {
	header := append([]string{"ID"}, columns...)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header(toAnySlice(header)...)

	for _, obj := range objects {
		row := []string{obj.Identity()}
		for _, column := range columns {
			value, _ := obj.Field(column)
			row = append(row, value)
		}

		_ = table.Append(toAnySlice(row)...)
	}

	_ = table.Render()
}

// renderObject prints one object as a property/value table, or as a full
// field dump for json and yaml output.
func renderObject(obj dirsvc.DirectoryObject) error {
	output := viper.GetString("output")

	switch output {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(objectFields(obj))
	case "yaml":
		return yaml.NewEncoder(os.Stdout).Encode(objectFields(obj))
	default:
		fields := objectFields(obj)

		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}

		sort.Strings(names)

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Field", "Value")

		for _, name := range names {
			_ = table.Append(name, fields[name])
		}

		_ = table.Render()

		return nil
	}
}

func toAnySlice(values []string) []interface{} {
	out := make([]interface{}, 0, len(values))
	for _, value := range values {
		out = append(out, value)
	}

	return out
}
