package value

// BankCode внутренний код банка получателя.
type BankCode string

//nolint:gochecknoglobals
var bankDisplayNames = map[BankCode]string{
	"sber":    "Сбербанк",
	"tinkoff": "Т-Банк",
	"alfa":    "Альфа-Банк",
	"vtb":     "ВТБ",
}

// DisplayName возвращает название банка для пользователя. Неизвестный код
// возвращается как есть.
func (c BankCode) DisplayName() string {
	if name, ok := bankDisplayNames[c]; ok {
		return name
	}

	return string(c)
}

func (c BankCode) String() string {
	return string(c)
}
