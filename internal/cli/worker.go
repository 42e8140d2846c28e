package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gevulot-network/gevulot-go/gvpb"
	"github.com/gevulot-network/gevulot-go/types"
)

var workerFile string

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Manage compute workers",
}

var workerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered workers",
	RunE: func(cmd *cobra.Command, args []string) error {
		for worker, err := range client.Workers.List(cmd.Context()) {
			if err != nil {
				return err
			}
			if err := printYAML(worker); err != nil {
				return err
			}
			fmt.Println("---")
		}
		return nil
	},
}

var workerGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one worker",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		worker, err := client.Workers.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printYAML(worker)
	},
}

var workerCreateCmd = &cobra.Command{
	Use:   "create -f <manifest.yaml>",
	Short: "Register a worker from a manifest",
	RunE: func(cmd *cobra.Command, args []string) error {
		var manifest types.Worker
		if err := readManifest(workerFile, &manifest); err != nil {
			return err
		}
		msg := &gvpb.MsgCreateWorker{
			Name:        manifest.Metadata.Name,
			Description: manifest.Metadata.Description,
			Cpus:        uint64(manifest.Spec.Cpus),
			Gpus:        uint64(manifest.Spec.Gpus),
			Memory:      uint64(manifest.Spec.Memory),
			Disk:        uint64(manifest.Spec.Disk),
			Tags:        manifest.Metadata.Tags,
		}
		for _, l := range manifest.Metadata.Labels {
			msg.Labels = append(msg.Labels, &gvpb.Label{Key: l.Key, Value: l.Value})
		}
		id, err := client.Workers.Create(cmd.Context(), msg)
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}

var workerDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a worker you own",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return client.Workers.Delete(cmd.Context(), args[0])
	},
}

var workerAnnounceExitCmd = &cobra.Command{
	Use:   "announce-exit <id>",
	Short: "Announce that a worker will leave the network",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return client.Workers.AnnounceExit(cmd.Context(), args[0])
	},
}

func readManifest(path string, v any) error {
	if path == "" {
		return fmt.Errorf("a manifest file is required, pass -f <file>")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read manifest: %w", err)
	}
	if err := yaml.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return nil
}

func init() {
	workerCreateCmd.Flags().StringVarP(&workerFile, "file", "f", "", "worker manifest file")
	workerCmd.AddCommand(workerListCmd, workerGetCmd, workerCreateCmd, workerDeleteCmd, workerAnnounceExitCmd)
	rootCmd.AddCommand(workerCmd)
}
