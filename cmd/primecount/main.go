// primecount prints the number of primes found when sieving up to a bound.
//
// The single positional argument is parsed as a natural number. The sieve
// always covers the bound rounded up to the next multiple of 30, and the
// printed count covers that whole range, so it may include up to a handful of
// primes just past the literal argument.
//
// Usage:
//
//	primecount 1000000
//
// A missing or non-numeric argument produces a fixed diagnostic line and a
// normal exit.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ykonstant1/esiv"
)

const invalidInput = "Invalid input: give a positive integer."

// run holds the whole program so tests can drive it with arbitrary arguments
// and capture the output.
func run(args []string, w io.Writer) {
	if len(args) < 1 {
		fmt.Fprintln(w, invalidInput)
		return
	}

	n, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(w, invalidInput)
		return
	}

	fmt.Fprintln(w, esiv.Count(n))
}

func main() {
	run(os.Args[1:], os.Stdout)
}
