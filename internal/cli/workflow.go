package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gevulot-network/gevulot-go/gvpb"
	"github.com/gevulot-network/gevulot-go/types"
)

var workflowFile string

var workflowCmd = &cobra.Command{
	Use:   "workflow",
	Short: "Manage staged task pipelines",
}

var workflowListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all workflows",
	RunE: func(cmd *cobra.Command, args []string) error {
		for workflow, err := range client.Workflows.List(cmd.Context()) {
			if err != nil {
				return err
			}
			if err := printYAML(workflow); err != nil {
				return err
			}
			fmt.Println("---")
		}
		return nil
	},
}

var workflowGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one workflow",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workflow, err := client.Workflows.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printYAML(workflow)
	},
}

var workflowCreateCmd = &cobra.Command{
	Use:   "create -f <manifest.yaml>",
	Short: "Submit a workflow from a manifest",
	RunE: func(cmd *cobra.Command, args []string) error {
		var manifest types.Workflow
		if err := readManifest(workflowFile, &manifest); err != nil {
			return err
		}
		msg := &gvpb.MsgCreateWorkflow{
			Spec: manifest.SpecToProto(),
			Tags: manifest.Metadata.Tags,
		}
		for _, l := range manifest.Metadata.Labels {
			msg.Labels = append(msg.Labels, &gvpb.Label{Key: l.Key, Value: l.Value})
		}
		id, err := client.Workflows.Create(cmd.Context(), msg)
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}

var workflowDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a workflow you own",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return client.Workflows.Delete(cmd.Context(), args[0])
	},
}

func init() {
	workflowCreateCmd.Flags().StringVarP(&workflowFile, "file", "f", "", "workflow manifest file")
	workflowCmd.AddCommand(workflowListCmd, workflowGetCmd, workflowCreateCmd, workflowDeleteCmd)
	rootCmd.AddCommand(workflowCmd)
}
