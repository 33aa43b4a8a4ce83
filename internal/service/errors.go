package service

import (
	"errors"
	"fmt"

	"github.com/ramoniswack/rent-tent-server/internal/domain"
)

// repoErr classifies an error returned by the persistence layer.
// The sentinel errors pass through untouched; anything else — network,
// timeout, driver failure — collapses into domain.ErrTransport, because the
// caller's remedy is the same regardless of cause. The original error text
// is preserved for logs.
func repoErr(err error) error {
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrConflict) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrTransport, err)
}
