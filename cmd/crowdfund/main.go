package main

import (
	"github.com/onflow/flow-crowdfund/cmd/crowdfund/cmd"
)

func main() {
	cmd.Execute()
}
