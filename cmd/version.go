package cmd

import (
	"fmt"
	"runtime"

	"github.com/nrqlkit/nrqltutor/internal/selfupdate"
	"github.com/spf13/cobra"
)

// version is stamped by -ldflags "-X .../cmd.version=vX.Y.Z".
var version = selfupdate.DevVersion

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the nrqltutor version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nrqltutor %s (%s, %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}
