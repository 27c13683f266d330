package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildReference(t *testing.T) {
	// 14 марта 2025, тип "Vol", пятый инцидент месяца
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	reference := BuildReference(date, "Vol", 5)

	assert.Equal(t, "20250314-VOL-005", reference)
}

func TestBuildReference_PaddingAndOverflow(t *testing.T) {
	date := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)

	// Порядковый номер дополняется нулями до трёх знаков
	assert.Equal(t, "20251201-INT-042", BuildReference(date, "Intrusion", 42))
	// Номера длиннее трёх знаков не усекаются
	assert.Equal(t, "20251201-INT-1234", BuildReference(date, "Intrusion", 1234))
}

func TestTypePart(t *testing.T) {
	// Первые три символа в верхнем регистре
	assert.Equal(t, "VOL", TypePart("Vol de matériel"))
	assert.Equal(t, "INT", TypePart("intrusion"))
	// Названия короче трёх символов используются целиком
	assert.Equal(t, "GO", TypePart("Go"))
	assert.Equal(t, "", TypePart(""))
	// Многобайтовые символы считаются как один символ
	assert.Equal(t, "DÉB", TypePart("Débordement"))
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "202503", MonthKey(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "202512", MonthKey(time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC)))
}
