package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veldt-labs/argdb/schema"
)

var (
	selectFunc   string
	selectGroup  string
	selectArg    string
	selectLang   string
	selectConfig string
	selectForm   bool
)

// SelectCmd represents the select command
var SelectCmd = &cobra.Command{
	Use:   "select",
	Short: "Query schema rows and instance values",
	Long: `Query schema rows, optionally merged with instance values.

Without --config, shows the matching store rows re-nested by path. With
--config, the addressed subtree of the instance configuration is merged
in. With --form, every argument of the function is shown with its live
instance value in place, the way an edit form would render it.

Examples:
  argdb select --func Main                       # All rows of func Main
  argdb select --arg Interval                    # Every Interval argument
  argdb select --func Main --config demo --form  # Editable view of "demo"`,
	RunE: runSelect,
}

// MenuCmd represents the menu command
var MenuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Show the function navigation tree",
	Long: `Show the function-level navigation entries for a language.

Examples:
  argdb menu                   # Menu in the default language
  argdb menu --lang zh-CN      # Menu in Chinese`,
	RunE: runMenu,
}

func init() {
	SelectCmd.Flags().StringVar(&selectFunc, "func", "", "Function name")
	SelectCmd.Flags().StringVar(&selectGroup, "group", "", "Group name")
	SelectCmd.Flags().StringVar(&selectArg, "arg", "", "Argument name")
	SelectCmd.Flags().StringVar(&selectLang, "lang", "", "Language tag (default: settings default)")
	SelectCmd.Flags().StringVar(&selectConfig, "config", "", "Instance configuration name")
	SelectCmd.Flags().BoolVar(&selectForm, "form", false, "Show the full function with live instance values")

	MenuCmd.Flags().StringVar(&selectLang, "lang", "", "Language tag (default: settings default)")
}

// splitPath parses "Func.Group.Arg" into its up-to-three components.
func splitPath(path string) (fn, group, arg string, err error) {
	parts := strings.Split(path, ".")
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("path %q must have the form Func.Group.Arg", path)
	}
	return parts[0], parts[1], parts[2], nil
}

func runSelect(cmd *cobra.Command, args []string) error {
	d, err := openDatabase()
	if err != nil {
		return err
	}

	lang := selectLang
	if lang == "" {
		lang = d.Settings().Schema.Default
	}
	req := schema.Request{
		Func:   selectFunc,
		Group:  selectGroup,
		Arg:    selectArg,
		Lang:   lang,
		Config: selectConfig,
	}

	var resp map[string]any
	switch {
	case selectForm:
		resp, err = d.SelectFunction(req)
	case selectConfig != "":
		resp, err = d.SelectConfig(req)
	default:
		resp, err = d.SelectDB(req)
	}
	if err != nil {
		return err
	}
	return printYAML(resp)
}

func runMenu(cmd *cobra.Command, args []string) error {
	d, err := openDatabase()
	if err != nil {
		return err
	}

	lang := selectLang
	if lang == "" {
		lang = d.Settings().Schema.Default
	}
	resp, err := d.SelectMenu(schema.Request{Lang: lang})
	if err != nil {
		return err
	}
	return printYAML(resp)
}
