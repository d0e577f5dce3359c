package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lifesim/scenario-engine/internal/config"
	"github.com/lifesim/scenario-engine/internal/output"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored scenarios, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}
		scenarios := svc.List()
		if flagFormat == "json" {
			data, err := json.MarshalIndent(scenarios, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, string(data))
			return nil
		}
		fmt.Fprint(os.Stdout, output.FormatList(scenarios))
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored scenario by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}
		if svc.Delete(args[0]) {
			fmt.Fprintf(os.Stdout, "Deleted %s\n", args[0])
		} else {
			fmt.Fprintf(os.Stdout, "No scenario with id %s\n", args[0])
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a stored scenario",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}
		record, ok := svc.Get(args[0])
		if !ok {
			return fmt.Errorf("no scenario with id %s", args[0])
		}
		formatter, err := newFormatter()
		if err != nil {
			return err
		}
		data, err := formatter.Format(&record)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(flagConfig); err == nil {
			return fmt.Errorf("%s already exists", flagConfig)
		}
		if err := config.NewInputParser().WriteExampleConfig(flagConfig); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote %s\n", flagConfig)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd, deleteCmd, showCmd, initCmd)
}
