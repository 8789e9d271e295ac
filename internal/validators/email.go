package validators

import "regexp"

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

var phoneRe = regexp.MustCompile(`^\+?[0-9 ]{8,15}$`)

func IsValidPhone(phone string) bool {
	return phoneRe.MatchString(phone)
}
