package delivery

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"cape/internal/models"
)

// Customer field limits.
const (
	CustomerNameMinLength = 2
	CustomerNameMaxLength = 50
	AddressMinLength      = 10
	AddressMaxLength      = 200
)

var phonePattern = regexp.MustCompile(`^\+?[0-9\-()]{10,}$`)

// ValidateCustomerInfo runs the field-level form checks and returns a
// per-field map of Russian error messages. An empty map means the info
// is valid.
func ValidateCustomerInfo(info models.CustomerInfo) map[string]string {
	errors := map[string]string{}

	if utf8.RuneCountInString(strings.TrimSpace(info.Name)) < CustomerNameMinLength {
		errors["name"] = "Имя должно содержать минимум 2 символа"
	}

	phone := strings.ReplaceAll(info.Phone, " ", "")
	if !phonePattern.MatchString(phone) {
		errors["phone"] = "Введите корректный номер телефона"
	}

	if utf8.RuneCountInString(strings.TrimSpace(info.Address)) < AddressMinLength {
		errors["address"] = "Адрес должен содержать минимум 10 символов"
	}

	return errors
}
