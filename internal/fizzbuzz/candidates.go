package fizzbuzz

import "strconv"

// Brute checks the combined case first and falls through the remaining rules.
func Brute(n uint64) string {
	if n%15 == 0 {
		return "FizzBuzz"
	} else if n%3 == 0 {
		return "Fizz"
	} else if n%5 == 0 {
		return "Buzz"
	}
	return strconv.FormatUint(n, 10)
}

// Accumulate builds the label piece by piece and falls back to the number
// when nothing was appended.
func Accumulate(n uint64) string {
	result := ""
	if n%3 == 0 {
		result += "Fizz"
	}
	if n%5 == 0 {
		result += "Buzz"
	}
	if result == "" {
		result += strconv.FormatUint(n, 10)
	}
	return result
}

// Compositional splits on divisibility by three and delegates to a helper
// for each half.
func Compositional(n uint64) string {
	if n%3 == 0 {
		return optimisticBuzz(n)
	}
	return pessimisticBuzz(n)
}

func optimisticBuzz(n uint64) string {
	if n%5 == 0 {
		return "FizzBuzz"
	}
	return "Fizz"
}

func pessimisticBuzz(n uint64) string {
	if n%5 == 0 {
		return "Buzz"
	}
	return strconv.FormatUint(n, 10)
}

// Switch evaluates both predicates once and switches on them.
func Switch(n uint64) string {
	fizz, buzz := n%3 == 0, n%5 == 0
	switch {
	case fizz && buzz:
		return "FizzBuzz"
	case fizz:
		return "Fizz"
	case buzz:
		return "Buzz"
	default:
		return strconv.FormatUint(n, 10)
	}
}

// cycle holds the label for each residue mod 15. Empty entries mean "use the number".
var cycle = [15]string{
	0: "FizzBuzz",
	3: "Fizz", 6: "Fizz", 9: "Fizz", 12: "Fizz",
	5: "Buzz", 10: "Buzz",
}

// Cycle looks the label up by residue, taking a single modulo per call.
func Cycle(n uint64) string {
	if label := cycle[n%15]; label != "" {
		return label
	}
	return strconv.FormatUint(n, 10)
}

// Bytes appends into a stack buffer and converts to a string once.
func Bytes(n uint64) string {
	var buf [20]byte
	b := buf[:0]
	if n%3 == 0 {
		b = append(b, "Fizz"...)
	}
	if n%5 == 0 {
		b = append(b, "Buzz"...)
	}
	if len(b) == 0 {
		b = strconv.AppendUint(b, n, 10)
	}
	return string(b)
}

// Reference is the plain statement of the rules. Every candidate must agree
// with it for every input.
func Reference(n uint64) string {
	switch {
	case n%15 == 0:
		return "FizzBuzz"
	case n%3 == 0:
		return "Fizz"
	case n%5 == 0:
		return "Buzz"
	}
	return strconv.FormatUint(n, 10)
}
