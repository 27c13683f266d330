package service

import (
	"fmt"
	"strings"
	"time"
)

// BuildReference формирует человекочитаемую ссылку инцидента вида
// YYYYMMDD-TYP-NNN. Вычисляется один раз при создании и далее неизменна.
func BuildReference(date time.Time, typeName string, sequence int) string {
	return fmt.Sprintf("%s-%s-%03d", DatePart(date), TypePart(typeName), sequence)
}

// DatePart - дата без разделителей (YYYYMMDD)
func DatePart(date time.Time) string {
	return date.Format("20060102")
}

// TypePart - первые три символа названия типа в верхнем регистре.
// Названия короче трёх символов используются целиком.
func TypePart(typeName string) string {
	runes := []rune(typeName)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return strings.ToUpper(string(runes))
}

// MonthKey - ключ месяца YYYYMM; по нему считается порядковый номер
// инцидента внутри месяца
func MonthKey(date time.Time) string {
	return date.Format("200601")
}
