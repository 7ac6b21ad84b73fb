package handlers

import (
	"errors"
	"log"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/ramorim1998/gerador-times-back/internal/services"
)

// respondStoreError maps a service error to 404 or a logged 500.
func respondStoreError(c *drift.Context, err error, notFound, failed string) {
	if errors.Is(err, services.ErrNotFound) {
		c.NotFound(notFound)
		return
	}
	log.Printf("%s: %v", failed, err)
	c.InternalServerError(failed)
}
