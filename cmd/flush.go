/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	serial "github.com/ttylab/go-serial"
)

// flushCmd represents the flush command
var flushCmd = &cobra.Command{
	Use:   "flush <port>",
	Short: "Discard buffered data on a serial port",
	Long: `Discard data buffered by the kernel for a serial port.

By default both the receive and transmit buffers are flushed; use
--input or --output to flush only one side.

Examples:
  ttyctl flush /dev/ttyUSB0
  ttyctl flush /dev/ttyUSB0 --input`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		portPath := args[0]
		inputOnly, _ := cmd.Flags().GetBool("input")
		outputOnly, _ := cmd.Flags().GetBool("output")

		port, err := serial.Open(portPath, serial.AccessReadWrite)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening port: %v\n", err)
			os.Exit(1)
		}
		defer port.Close()

		if !outputOnly {
			if err := port.FlushInput(); err != nil {
				fmt.Fprintf(os.Stderr, "Error flushing input: %v\n", err)
				os.Exit(1)
			}
		}
		if !inputOnly {
			if err := port.FlushOutput(); err != nil {
				fmt.Fprintf(os.Stderr, "Error flushing output: %v\n", err)
				os.Exit(1)
			}
		}

		fmt.Printf("Flushed %s\n", portPath)
	},
}

func init() {
	rootCmd.AddCommand(flushCmd)

	flushCmd.Flags().Bool("input", false, "Flush only the receive buffer")
	flushCmd.Flags().Bool("output", false, "Flush only the transmit buffer")
}
