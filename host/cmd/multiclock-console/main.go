package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"multiclock/host/serial"
)

var (
	device = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud   = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
)

func main() {
	flag.Parse()

	fmt.Println("Multiclock Console - Remote Control for the Multimode Clock Source")
	fmt.Println("==================================================================")
	fmt.Println()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	fmt.Printf("Connecting to %s...\n", *device)
	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	fmt.Println("Connected. Hold a mode button on the device to enter remote control.")
	fmt.Println("Firmware commands: stop, toggle, freq <Hz>, reset, power on/off, menu, status")
	fmt.Println("Type 'quit' to exit.")
	fmt.Println()

	// Device output straight to the terminal. The firmware echoes typed
	// bytes and prints its own prompt, so nothing is added here.
	go func() {
		buf := make([]byte, 256)
		for {
			n, err := port.Read(buf)
			if n > 0 {
				os.Stdout.Write(buf[:n])
			}
			if err != nil && err != io.EOF {
				return
			}
		}
	}()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return
		case "":
			continue
		}

		if _, err := port.Write([]byte(line + "\r")); err != nil {
			fmt.Fprintf(os.Stderr, "Error: write failed: %v\n", err)
			os.Exit(1)
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}
