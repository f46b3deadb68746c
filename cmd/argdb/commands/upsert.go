package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veldt-labs/argdb/schema"
)

var (
	setLang   string
	setConfig string

	translateLang    string
	translateConfig  string
	translateName    string
	translateHelp    string
	translateType    string
	translateOptions []string
)

// SetCmd represents the set command
var SetCmd = &cobra.Command{
	Use:   "set <Func.Group.Arg> <value>",
	Short: "Write a typed value into an instance configuration",
	Long: `Write a value into an instance configuration.

The raw value is typed against the addressed schema row. Values outside
the row's option set fall back to the schema default rather than
failing.

Examples:
  argdb set Main.Scheduler.Interval 20 --config demo
  argdb set Main.Scheduler.Mode b --config demo`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

// TranslateCmd represents the translate command
var TranslateCmd = &cobra.Command{
	Use:   "translate <Func.Group.Arg>",
	Short: "Update a row's translated content",
	Long: `Update the translated name, help text, widget type or option labels
of a schema row.

Examples:
  argdb translate Main.Scheduler.Interval --name "Poll Interval" --lang en-US
  argdb translate Main.Scheduler.Mode --option a=Alpha --option b=Beta`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func init() {
	SetCmd.Flags().StringVar(&setLang, "lang", "", "Language tag (default: settings default)")
	SetCmd.Flags().StringVar(&setConfig, "config", "template", "Instance configuration name")

	TranslateCmd.Flags().StringVar(&translateLang, "lang", "", "Language tag (default: settings default)")
	TranslateCmd.Flags().StringVar(&translateConfig, "config", "template", "Instance configuration for the response view")
	TranslateCmd.Flags().StringVar(&translateName, "name", "", "Translated argument name")
	TranslateCmd.Flags().StringVar(&translateHelp, "help-text", "", "Translated help text")
	TranslateCmd.Flags().StringVar(&translateType, "type", "", "Widget type (input, select, ...)")
	TranslateCmd.Flags().StringSliceVar(&translateOptions, "option", nil, "Option label as key=label (repeatable)")
}

func runSet(cmd *cobra.Command, args []string) error {
	d, err := openDatabase()
	if err != nil {
		return err
	}

	fn, group, arg, err := splitPath(args[0])
	if err != nil {
		return err
	}
	lang := setLang
	if lang == "" {
		lang = d.Settings().Schema.Default
	}

	resp, err := d.UpsertConfig(schema.Request{
		Func:   fn,
		Group:  group,
		Arg:    arg,
		Lang:   lang,
		Config: setConfig,
		Value:  args[1],
	})
	if err != nil {
		return err
	}
	return printYAML(resp)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	d, err := openDatabase()
	if err != nil {
		return err
	}

	fn, group, arg, err := splitPath(args[0])
	if err != nil {
		return err
	}
	lang := translateLang
	if lang == "" {
		lang = d.Settings().Schema.Default
	}

	options, err := parseOptionFlags(translateOptions)
	if err != nil {
		return err
	}

	resp, err := d.UpsertDB(schema.Request{
		Func:   fn,
		Group:  group,
		Arg:    arg,
		Lang:   lang,
		Config: translateConfig,
		Name:   translateName,
		Help:   translateHelp,
		Type:   translateType,
		Option: options,
	})
	if err != nil {
		return err
	}
	return printYAML(resp)
}

func parseOptionFlags(pairs []string) (schema.Options, error) {
	var options schema.Options
	for _, pair := range pairs {
		key, label, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("option %q must have the form key=label", pair)
		}
		options = append(options, schema.Option{Key: key, Label: label})
	}
	return options, nil
}
