package extract

import (
	"context"
	"errors"
)

// ErrApplyNotImplemented is returned by Apply on both backends.
//
// TODO: implementing apply needs a disambiguation strategy for repeated
// identical literals within one file before originalText span replacement
// is safe.
var ErrApplyNotImplemented = errors.New("applying translations to source files is not implemented")

func (e *Reference) Apply(ctx context.Context, root string, translations map[string]string) error {
	return ErrApplyNotImplemented
}

func (e *Accelerated) Apply(ctx context.Context, root string, translations map[string]string) error {
	return ErrApplyNotImplemented
}
