package models

import "errors"

// errUnavailable используется, когда источник пометили недоступным без причины
var errUnavailable = errors.New("source unavailable")

// Result - результат одного внешнего источника: либо заполненная запись, либо явная отметка о недоступности
type Result[T any] struct {
	value T
	ok    bool
	err   error
}

// Available оборачивает полученное значение
func Available[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Unavailable помечает источник недоступным и сохраняет причину
func Unavailable[T any](err error) Result[T] {
	if err == nil {
		err = errUnavailable
	}
	return Result[T]{err: err}
}

// Get возвращает значение и признак его наличия
func (r Result[T]) Get() (T, bool) {
	return r.value, r.ok
}

// OrDefault возвращает значение или def, если источник недоступен
func (r Result[T]) OrDefault(def T) T {
	if !r.ok {
		return def
	}
	return r.value
}

func (r Result[T]) IsAvailable() bool {
	return r.ok
}

// Err возвращает причину недоступности (nil для доступного результата)
func (r Result[T]) Err() error {
	return r.err
}
