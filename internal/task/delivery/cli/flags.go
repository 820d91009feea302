package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	flagName     = "name"
	flagEmail    = "email"
	flagPassword = "password"
	flagTitle    = "title"
	flagContent  = "content"
	flagPriority = "priority"
	flagJSON     = "json"
)

func addCredentialFlags(fs *pflag.FlagSet) {
	fs.String(flagEmail, "", "Account email")
	fs.String(flagPassword, "", "Account password")
}

func addJSONFlag(fs *pflag.FlagSet) {
	fs.Bool(flagJSON, false, "Output in JSON format")
}

func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool(flagJSON)
	return v
}
