// Package cedula validates Dominican national identity numbers.
package cedula

import "strings"

// Valid reports whether ced is a well formed cédula: at least 11 digits once
// dashes are removed, a matching Luhn-style check digit and a body that does
// not start with "000".
func Valid(ced string) bool {
	c := strings.ReplaceAll(strings.TrimSpace(ced), "-", "")
	if len(c) < 11 {
		return false
	}
	for _, r := range c {
		if r < '0' || r > '9' {
			return false
		}
	}

	body := c[:len(c)-1]
	check := int(c[len(c)-1] - '0')

	sum := 0
	for i := 0; i < len(body); i++ {
		res := int(body[i]-'0') * (1 + i%2)
		if res > 9 {
			res = res/10 + res%10
		}
		sum += res
	}

	return (10-sum%10)%10 == check && !strings.HasPrefix(body, "000")
}
