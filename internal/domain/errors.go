package domain

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrConfiguration       = errors.New("catalog configuration error")
	ErrRenderTargetMissing = errors.New("render target missing")
	ErrInvalidContact      = errors.New("invalid contact form")
)
