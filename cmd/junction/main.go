// Command junction groups 3-D points by proximity.
//
//	junction span   points.txt             # pair that finally connects every point
//	junction groups points.txt --pairs 10  # product of the largest groups after K merges
package main

import "os"

func main() {
	// Execute the root command. Cobra handles parsing the arguments and printing errors.
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
