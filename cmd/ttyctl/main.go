/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package main

import "github.com/ttylab/go-serial/cmd"

func main() {
	cmd.Execute()
}
