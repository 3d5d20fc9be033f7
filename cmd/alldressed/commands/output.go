package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/all-dressed/alldressed-go/internal/constants"
)

// Output formats.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
)

// ErrUnknownOutputFormat is returned for an --output other than table, json
// or yaml.
var ErrUnknownOutputFormat = fmt.Errorf("unknown output format, expected %s, %s or %s",
	OutputFormatTable, OutputFormatJSON, OutputFormatYAML)

const timeLayout = "2006-01-02 15:04:05"

// outputFormat returns the requested format. Without one, terminals get a
// table and pipes get json.
func outputFormat(out io.Writer) (string, error) {
	format := strings.ToLower(viper.GetString("output"))

	switch format {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return format, nil
	case "":
		if file, ok := out.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
			return OutputFormatTable, nil
		}

		return OutputFormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOutputFormat, format)
	}
}

// column renders one field of T in a table.
type column[T any] struct {
	Header string
	Value  func(item *T) string
}

// OutputRenderer writes data in the format selected by --output.
type OutputRenderer[T any] struct {
	Columns []column[T]
	// NoItemsMsg is printed instead of an empty table.
	NoItemsMsg string
}

// Render writes items to the output of cmd.
func (o *OutputRenderer[T]) Render(cmd *cobra.Command, items []*T) error {
	out := cmd.OutOrStdout()

	format, err := outputFormat(out)
	if err != nil {
		return err
	}

	switch format {
	case OutputFormatJSON:
		return renderJSON(out, items)
	case OutputFormatYAML:
		return renderYAML(out, items)
	default:
		if len(items) == 0 && o.NoItemsMsg != "" {
			_, _ = fmt.Fprintln(out, o.NoItemsMsg)

			return nil
		}

		table := tablewriter.NewWriter(out)

		headers := make([]any, 0, len(o.Columns))
		for _, col := range o.Columns {
			headers = append(headers, col.Header)
		}

		table.Header(headers...)

		for _, item := range items {
			row := make([]any, 0, len(o.Columns))
			for _, col := range o.Columns {
				row = append(row, col.Value(item))
			}

			_ = table.Append(row...)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

// RenderOne writes a single item.
func (o *OutputRenderer[T]) RenderOne(cmd *cobra.Command, item *T) error {
	out := cmd.OutOrStdout()

	format, err := outputFormat(out)
	if err != nil {
		return err
	}

	switch format {
	case OutputFormatJSON:
		return renderJSON(out, item)
	case OutputFormatYAML:
		return renderYAML(out, item)
	default:
		table := tablewriter.NewWriter(out)
		table.Header("Property", "Value")

		for _, col := range o.Columns {
			_ = table.Append(col.Header, col.Value(item))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func renderJSON(out io.Writer, data any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", strings.Repeat(" ", constants.DefaultIndent))

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// renderYAML goes through JSON first: entities only expose their attributes
// through MarshalJSON.
func renderYAML(out io.Writer, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(constants.DefaultIndent)

	if err := encoder.Encode(generic); err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return encoder.Close()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(timeLayout)
}

func formatInt(value int) string {
	return strconv.Itoa(value)
}

func formatBool(value bool) string {
	return strconv.FormatBool(value)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(constants.DateLayout)
}
