/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	serial "github.com/ttylab/go-serial"
)

// catCmd represents the cat command
var catCmd = &cobra.Command{
	Use:   "cat <port>",
	Short: "Stream raw data from a serial port to stdout",
	Long: `Stream raw incoming bytes from a serial port to stdout until interrupted.

Unlike connect, this performs no formatting at all, which makes it
suitable for piping into other tools:

  ttyctl cat /dev/ttyUSB0 | xxd
  ttyctl cat /dev/ttyUSB0 --baud 9600 > dump.bin`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		portPath := args[0]

		port, err := openPort(portPath, serial.AccessReadOnly)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening port: %v\n", err)
			os.Exit(1)
		}
		defer port.Close()

		// Interrupt closes the port, which unblocks the read loop.
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sigs
			port.Close()
		}()

		buf := make([]byte, 4096)
		for {
			n, err := port.Read(buf)
			if err != nil {
				return
			}
			if n > 0 {
				os.Stdout.Write(buf[:n])
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(catCmd)
}
