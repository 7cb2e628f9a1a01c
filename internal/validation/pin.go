package validation

import (
	"fmt"
	"unicode"
)

// MaxPinLen максимальная длина PIN синхронизации
const MaxPinLen = 64

// ValidatePin проверяет PIN перед запуском сервера.
// PIN передается в HTTP заголовке, поэтому управляющие символы и пробелы запрещены.
func ValidatePin(pin string) error {
	if pin == "" {
		return fmt.Errorf("pin cannot be empty")
	}

	if len(pin) > MaxPinLen {
		return fmt.Errorf("pin must not exceed %d characters", MaxPinLen)
	}

	for _, r := range pin {
		if unicode.IsControl(r) || unicode.IsSpace(r) || r > unicode.MaxASCII {
			return fmt.Errorf("pin can only contain printable ASCII characters without spaces")
		}
	}

	return nil
}
