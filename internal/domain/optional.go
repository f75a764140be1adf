package domain

import (
	"bytes"
	"encoding/json"
)

// OptionalFloat - число, которое провайдер может не прислать (null или отсутствует).
// Значение по умолчанию вызывающий код выбирает явно через Or.
type OptionalFloat struct {
	value float64
	valid bool
}

// Some - заданное значение (в том числе настоящий ноль)
func Some(v float64) OptionalFloat {
	return OptionalFloat{value: v, valid: true}
}

// None - отсутствующее значение
func None() OptionalFloat {
	return OptionalFloat{}
}

// Get возвращает значение и признак его наличия.
func (o OptionalFloat) Get() (float64, bool) {
	return o.value, o.valid
}

// Valid - есть ли значение.
func (o OptionalFloat) Valid() bool {
	return o.valid
}

// Or возвращает значение или def, если значения нет.
func (o OptionalFloat) Or(def float64) float64 {
	if !o.valid {
		return def
	}
	return o.value
}

// Ptr - значение в виде указателя (nil, если нет), удобно для DTO с omitempty.
func (o OptionalFloat) Ptr() *float64 {
	if !o.valid {
		return nil
	}
	v := o.value
	return &v
}

func (o OptionalFloat) MarshalJSON() ([]byte, error) {
	if !o.valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *OptionalFloat) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = None()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
