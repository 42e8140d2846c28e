package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	gevulot "github.com/gevulot-network/gevulot-go"
	"github.com/gevulot-network/gevulot-go/gvpb"
)

var govStatus int32

var govCmd = &cobra.Command{
	Use:   "gov",
	Short: "Inspect and participate in chain governance",
}

var govListCmd = &cobra.Command{
	Use:   "list",
	Short: "List proposals",
	RunE: func(cmd *cobra.Command, args []string) error {
		for p, err := range client.Gov.Proposals(cmd.Context(), gevulot.ProposalFilter{Status: govStatus}) {
			if err != nil {
				return err
			}
			if err := printYAML(p); err != nil {
				return err
			}
		}
		return nil
	},
}

var govGetCmd = &cobra.Command{
	Use:   "get <proposal-id>",
	Short: "Show one proposal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid proposal id %q", args[0])
		}
		p, err := client.Gov.Proposal(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printYAML(p)
	},
}

var govTallyCmd = &cobra.Command{
	Use:   "tally <proposal-id>",
	Short: "Show the running vote tally of a proposal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid proposal id %q", args[0])
		}
		tally, err := client.Gov.TallyResult(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printYAML(tally)
	},
}

var govVoteCmd = &cobra.Command{
	Use:   "vote <proposal-id> <yes|no|abstain|veto>",
	Short: "Vote on a proposal as the signing account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid proposal id %q", args[0])
		}
		var option int32
		switch args[1] {
		case "yes":
			option = gvpb.VoteOptionYes
		case "no":
			option = gvpb.VoteOptionNo
		case "abstain":
			option = gvpb.VoteOptionAbstain
		case "veto":
			option = gvpb.VoteOptionNoWithVeto
		default:
			return fmt.Errorf("unknown vote option %q", args[1])
		}
		if err := client.Gov.CastVote(cmd.Context(), id, option); err != nil {
			return err
		}
		fmt.Printf("voted %s on proposal %d\n", args[1], id)
		return nil
	},
}

var govDepositCmd = &cobra.Command{
	Use:   "deposit <proposal-id> <amount>",
	Short: "Add to the deposit of a proposal",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid proposal id %q", args[0])
		}
		if err := client.Gov.AddDeposit(cmd.Context(), id, args[1]); err != nil {
			return err
		}
		fmt.Printf("deposited %s on proposal %d\n", args[1], id)
		return nil
	},
}

func init() {
	govListCmd.Flags().Int32Var(&govStatus, "status", 0, "filter by proposal status (1=deposit, 2=voting, 3=passed, 4=rejected, 5=failed)")
	govCmd.AddCommand(govListCmd, govGetCmd, govTallyCmd, govVoteCmd, govDepositCmd)
	rootCmd.AddCommand(govCmd)
}
