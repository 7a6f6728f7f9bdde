package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/nrqlkit/nrqltutor/internal/selfupdate"
	"github.com/spf13/cobra"
)

const updateTimeout = 2 * time.Minute

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Install the latest nrqltutor release",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _ := cmd.Flags().GetString("tag")
		checkOnly, _ := cmd.Flags().GetBool("check")

		ctx, cancel := context.WithTimeout(cmd.Context(), updateTimeout)
		defer cancel()
		checker := selfupdate.NewChecker(selfupdate.WithTimeout(updateTimeout))

		if checkOnly {
			res, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
			if err != nil {
				return err
			}
			if !res.UpdateAvailable {
				fmt.Printf("nrqltutor %s is up to date.\n", version)
				return nil
			}
			fmt.Printf("nrqltutor %s is available (running %s): %s\n", res.LatestVersion, version, res.ReleaseURL)
			return nil
		}

		err := checker.Update(ctx, &selfupdate.UpdateInput{CurrentVersion: version, TargetVersion: target},
			func(p selfupdate.UpdateProgress) { fmt.Println(p.Message) })
		switch {
		case err == nil:
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			fmt.Println("This is a development build; install a release build to enable updates.")
			return nil
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Printf("nrqltutor %s is up to date.\n", version)
			return nil
		case errors.Is(err, os.ErrPermission):
			return fmt.Errorf("%w\n\nThe executable is not writable; retry with elevated permissions", err)
		}
		return err
	},
}

func init() {
	updateCmd.Flags().String("tag", "", "Install this release tag instead of the latest")
	updateCmd.Flags().Bool("check", false, "Only report whether an update is available")
}
