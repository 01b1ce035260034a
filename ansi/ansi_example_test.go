package ansi_test

import (
	"fmt"

	"pkt.systems/dbug/ansi"
)

func ExampleHexToANSI256() {
	code, err := ansi.HexToANSI256("#FF6600")
	fmt.Println(code, err)

	// Output: 202 <nil>
}

func ExampleColorize() {
	fmt.Printf("%q\n", ansi.Colorize(40, "worker"))

	// Output: "\x1b[1;38;5;40mworker\x1b[0m"
}
