package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gevulot-network/gevulot-go/gvpb"
	"github.com/gevulot-network/gevulot-go/types"
)

var taskFile string

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Submit and inspect compute tasks",
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		for task, err := range client.Tasks.List(cmd.Context()) {
			if err != nil {
				return err
			}
			if err := printYAML(task); err != nil {
				return err
			}
			fmt.Println("---")
		}
		return nil
	},
}

var taskGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task, err := client.Tasks.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printYAML(task)
	},
}

var taskCreateCmd = &cobra.Command{
	Use:   "create -f <manifest.yaml>",
	Short: "Submit a task from a manifest",
	RunE: func(cmd *cobra.Command, args []string) error {
		var manifest types.Task
		if err := readManifest(taskFile, &manifest); err != nil {
			return err
		}
		msg := taskCreateMsg(manifest)
		id, err := client.Tasks.Create(cmd.Context(), msg)
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task you own",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return client.Tasks.Delete(cmd.Context(), args[0])
	},
}

func taskCreateMsg(manifest types.Task) *gvpb.MsgCreateTask {
	spec := manifest.Spec
	msg := &gvpb.MsgCreateTask{
		Image:       spec.Image,
		Command:     spec.Command,
		Args:        spec.Args,
		Cpus:        uint64(spec.Resources.Cpus),
		Gpus:        uint64(spec.Resources.Gpus),
		Memory:      uint64(spec.Resources.Memory),
		Time:        uint64(spec.Resources.Time),
		StoreStdout: spec.StoreStdout,
		StoreStderr: spec.StoreStderr,
		Tags:        manifest.Metadata.Tags,
	}
	for _, e := range spec.Env {
		msg.Env = append(msg.Env, &gvpb.TaskEnv{Name: e.Name, Value: e.Value})
	}
	for _, c := range spec.InputContexts {
		msg.InputContexts = append(msg.InputContexts, &gvpb.InputContext{Source: c.Source, Target: c.Target})
	}
	for _, c := range spec.OutputContexts {
		msg.OutputContexts = append(msg.OutputContexts, &gvpb.OutputContext{Source: c.Source, RetentionPeriod: c.RetentionPeriod})
	}
	for _, l := range manifest.Metadata.Labels {
		msg.Labels = append(msg.Labels, &gvpb.Label{Key: l.Key, Value: l.Value})
	}
	return msg
}

func init() {
	taskCreateCmd.Flags().StringVarP(&taskFile, "file", "f", "", "task manifest file")
	taskCmd.AddCommand(taskListCmd, taskGetCmd, taskCreateCmd, taskDeleteCmd)
	rootCmd.AddCommand(taskCmd)
}
