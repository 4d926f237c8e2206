package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"socialboot/pkg/format"
)

func newWalletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Inspect the coin balance",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the balance of the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, cleanup, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if e.app.Session.Current() == nil {
				fmt.Fprintln(out, mutedStyle.Render("not signed in"))
				return nil
			}
			fmt.Fprintln(out, labelValue("Balance", goldStyle.Render(format.Number(e.app.Wallet.Balance())+" coins")))
			return nil
		},
	})
	return cmd
}
