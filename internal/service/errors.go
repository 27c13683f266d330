package service

import "errors"

// ErrForbidden возвращается, когда роль пользователя не даёт права на операцию
var ErrForbidden = errors.New("operation not allowed for this role")

// ValidationError - ошибка бизнес-валидации; обрабатывается на границе
// хэндлера как 400, без побочных эффектов
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func newValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}
