package ast

import "errors"

var (
	ErrDecode        = errors.New("decode error")
	ErrMalformedWord = errors.New("word requires a symbol payload")
)
