// Command policyirr projects the benefits and internal rate of return of a
// 16/6 endowment policy.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
