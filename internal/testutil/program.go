package testutil

import (
	"fmt"
	"strings"
)

// BlockLines returns the 18 instructions of one well-formed ALU block with
// operands a, b and c substituted.
func BlockLines(a, b, c int) []string {
	return []string{
		"inp w",
		"mul x 0",
		"add x z",
		"mod x 26",
		fmt.Sprintf("div z %d", a),
		fmt.Sprintf("add x %d", b),
		"eql x w",
		"eql x 0",
		"mul y 0",
		"add y 25",
		"mul y x",
		"add y 1",
		"mul z y",
		"mul y 0",
		"add y w",
		fmt.Sprintf("add y %d", c),
		"mul y x",
		"add z y",
	}
}

// Block returns one well-formed block as text with a trailing newline.
func Block(a, b, c int) string {
	return strings.Join(BlockLines(a, b, c), "\n") + "\n"
}

// Program concatenates one block per triple.
func Program(triples ...[3]int) string {
	var sb strings.Builder
	for _, t := range triples {
		sb.WriteString(Block(t[0], t[1], t[2]))
	}
	return sb.String()
}
