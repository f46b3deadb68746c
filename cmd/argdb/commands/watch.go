package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// WatchCmd represents the watch command
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run migration whenever the definition changes",
	Long: `Watch the schema definition file and re-run the migration pipeline
(store merge, template projection, code generation) after every change.
Rapid successive writes from editors are debounced.

Press Ctrl+C to stop.`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	d, err := openDatabase()
	if err != nil {
		return err
	}

	// Start from a consistent state before watching
	if err := d.Migrate(); err != nil {
		return err
	}
	if err := d.GenerateCode(); err != nil {
		return err
	}

	watcher, err := d.NewDefinitionWatcher()
	if err != nil {
		return err
	}
	defer watcher.Stop()
	watcher.Start()

	pterm.DefaultHeader.WithFullWidth().Printf("argdb - Schema Watch")
	pterm.Println()
	pterm.Info.Printf("Watching: %s", d.Settings().DefinitionPath())
	pterm.Println()
	pterm.Info.Println("Press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	pterm.Println()
	pterm.Success.Println("Watch stopped")
	return nil
}
