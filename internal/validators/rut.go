package validators

import "strings"

// Validación de RUT chileno (módulo 11).

// CleanRut elimina puntos, guiones y espacios, y normaliza a mayúsculas.
func CleanRut(rut string) string {
	replacer := strings.NewReplacer(".", "", "-", "", " ", "")
	return strings.ToUpper(replacer.Replace(strings.TrimSpace(rut)))
}

// RutCheckDigit calcula el dígito verificador para un cuerpo numérico.
// Multiplicadores ciclan 2..7 desde el dígito menos significativo.
func RutCheckDigit(body string) string {
	sum := 0
	mult := 2

	for i := len(body) - 1; i >= 0; i-- {
		d := body[i]
		if d < '0' || d > '9' {
			return ""
		}
		sum += int(d-'0') * mult
		mult++
		if mult > 7 {
			mult = 2
		}
	}

	switch check := 11 - (sum % 11); check {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return string(rune('0' + check))
	}
}

// IsValidRut verifica cuerpo + dígito verificador. Puro y determinista.
func IsValidRut(rut string) bool {
	clean := CleanRut(rut)
	if len(clean) < 2 {
		return false
	}

	body := clean[:len(clean)-1]
	check := string(clean[len(clean)-1])

	expected := RutCheckDigit(body)
	if expected == "" {
		return false
	}

	return check == expected
}
