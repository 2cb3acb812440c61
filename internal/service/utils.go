package service

import "github.com/oklog/ulid/v2"

// outBillNoPrefix номер счёта мерчанта остаётся буквенно-цифровым и короче 32 символов.
const outBillNoPrefix = "T"

// NewOutBillNo возвращает уникальный номер счёта мерчанта, упорядоченный по времени.
func NewOutBillNo() string {
	return outBillNoPrefix + ulid.Make().String()
}
