// Tutor
//
// A learning assistant that explains the topics of a roadmap, grades your
// answers, and revises explanations when you point out a mistake.
package main

import (
	"fmt"
	"os"
)

var version = "dev"

func main() {
	if err := newRootCmd(setupApplication).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
