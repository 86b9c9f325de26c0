package service

import "strings"

// NormalizeCPF strips every non-digit rune so that "123.456.789-00" and
// "12345678900" compare equal.  The result must carry exactly eleven
// digits to count as a CPF.
func NormalizeCPF(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	cpf := b.String()
	if len(cpf) != 11 {
		return "", invalid("cpf deve conter 11 dígitos")
	}
	return cpf, nil
}

// NormalizeCRMV trims surrounding whitespace and upper-cases the
// registration so lookups are case-insensitive.
func NormalizeCRMV(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// NormalizeNome trims surrounding whitespace.  Comparison between
// names is always done case-insensitively via SameNome.
func NormalizeNome(raw string) string {
	return strings.TrimSpace(raw)
}

// SameNome reports whether two already-trimmed names are equal ignoring
// case.
func SameNome(a, b string) bool {
	return strings.EqualFold(a, b)
}
