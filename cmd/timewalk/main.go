// SPDX-License-Identifier: MIT

package main

import "github.com/katalvlaran/timewalk/cmd"

func main() {
	cmd.Execute()
}
