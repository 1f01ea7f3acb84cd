package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/irenemae27/substrate-warmup/pkg/keys"
)

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys <label>...",
		Short: "Show the identities derived for participant labels",
		Long: `Keys derives and prints the authority (ed25519) and account
(sr25519) identities for each label, rendered as SS58 addresses. Useful for
checking which addresses a profile will endow.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, label := range args {
				authority, err := keys.AuthorityKey(label)
				if err != nil {
					return err
				}
				account, err := keys.AccountKey(label)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n  authority: %s\n  account:   %s\n", label, authority, account)
			}
			return nil
		},
	}
}
