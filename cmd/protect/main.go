package main

import (
	"context"
	"fmt"
	"os"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cmd := newRootCommand()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if debugEnabled {
			fmt.Fprintf(os.Stderr, "protect: %+v\n", err)
		} else {
			fmt.Fprintln(os.Stderr, "protect:", err.Error())
		}
		os.Exit(1)
	}
}

func versionString() string {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return fmt.Sprintf("%s (built %s, commit %s)", buildVersion, buildDate, buildCommit)
}
