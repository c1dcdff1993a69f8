package value

// PayoutMethod способ получения выплаты.
type PayoutMethod string

const (
	PayoutMethodCard  PayoutMethod = "card"
	PayoutMethodPhone PayoutMethod = "phone"
)

// Display возвращает описание реквизита. Всё, кроме телефона, считается картой.
func (m PayoutMethod) Display() string {
	if m == PayoutMethodPhone {
		return "номер телефона"
	}

	return "номер карты"
}

func (m PayoutMethod) String() string {
	return string(m)
}
